package system

import (
	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
	"github.com/weihouang/folio/section"
)

// SceneTransitionSystem eases every section group toward visible or hidden.
// It re-reads the active section each frame instead of being notified of
// changes.
type SceneTransitionSystem struct {
	sections section.Reader
	factor   float64
}

func NewSceneTransitionSystem(sections section.Reader, factor float64) *SceneTransitionSystem {
	if factor <= 0 || factor >= 1 {
		factor = scene.DefaultDamping
	}
	return &SceneTransitionSystem{sections: sections, factor: factor}
}

// SetFactor changes the damping factor; values outside (0,1) are ignored.
func (s *SceneTransitionSystem) SetFactor(f float64) {
	if f > 0 && f < 1 {
		s.factor = f
	}
}

func (s *SceneTransitionSystem) Factor() float64 {
	return s.factor
}

func (s *SceneTransitionSystem) Update(w *ecs.World) {
	if w == nil || s.sections == nil {
		return
	}

	current := s.sections.Current()
	ecs.ForEach(w, component.SceneGroupComponent.Kind(), func(_ ecs.Entity, sg *component.SceneGroup) {
		sg.Group.Step(current, s.factor)
	})

	ecs.ForEach(w, component.GroupMemberComponent.Kind(), func(e ecs.Entity, m *component.GroupMember) {
		applyGroup(w, e, m.Group)
	})
}

// applyGroup copies a group's current values onto a member's transform and
// tint.
func applyGroup(w *ecs.World, e ecs.Entity, g *scene.Group) {
	if g == nil {
		return
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if v, ok := g.Value(scene.PropOffsetY); ok {
			t.OffsetY = v
		}
		if v, ok := g.Value(scene.PropScale); ok {
			t.Scale = v
		}
	}
	if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok {
		if v, ok := g.Value(scene.PropOpacity); ok {
			tint.Alpha = common.Clamp(v, 0, 1)
		}
	}
}
