package system

import (
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
	"github.com/weihouang/folio/section"
)

// CameraFollowSystem eases the camera toward the active section's viewpoint.
// It shares the damping rule with section groups but no state with them.
type CameraFollowSystem struct {
	sections section.Reader
	factor   float64
}

func NewCameraFollowSystem(sections section.Reader, factor float64) *CameraFollowSystem {
	if factor <= 0 || factor >= 1 {
		factor = scene.DefaultDamping
	}
	return &CameraFollowSystem{sections: sections, factor: factor}
}

func (cs *CameraFollowSystem) SetFactor(f float64) {
	if f > 0 && f < 1 {
		cs.factor = f
	}
}

func (cs *CameraFollowSystem) Update(w *ecs.World) {
	if w == nil || cs.sections == nil {
		return
	}
	current := cs.sections.Current()
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.Rig.Step(current, cs.factor)
	})
}
