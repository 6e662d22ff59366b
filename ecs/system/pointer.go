package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/hit"
	"github.com/weihouang/folio/section"
)

// Cursor reports the pointer position in logical pixels and the left
// button state.
type Cursor interface {
	Position() (float64, float64)
	JustClicked() bool
	Pressed() bool
}

type ebitenCursor struct{}

func (ebitenCursor) Position() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenCursor) JustClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenCursor) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func EbitenCursor() Cursor { return ebitenCursor{} }

// PointerSystem keeps a hit box per visible project card and section link,
// marks the hovered one and acts on click. A card click emits CardActivated;
// a link click jumps to its section. Entities of inactive sections are not
// interactive.
type PointerSystem struct {
	sections section.Controller
	cursor   Cursor
	space    *hit.Space[ecs.Entity]
	tracked  map[ecs.Entity]bool
}

func NewPointerSystem(sections section.Controller, cursor Cursor) *PointerSystem {
	return &PointerSystem{
		sections: sections,
		cursor:   cursor,
		space:    hit.NewSpace[ecs.Entity](),
		tracked:  map[ecs.Entity]bool{},
	}
}

func (ps *PointerSystem) Update(w *ecs.World) {
	if w == nil || ps.sections == nil || ps.cursor == nil {
		return
	}

	current := ps.sections.Current()
	pr := projectorFor(w)
	narrow := w.Viewport().Narrow(common.NarrowWidth)
	seen := make(map[ecs.Entity]bool, len(ps.tracked))

	ecs.ForEach3(w, component.ProjectCardComponent.Kind(), component.TransformComponent.Kind(), component.GroupMemberComponent.Kind(), func(e ecs.Entity, card *component.ProjectCard, t *component.Transform, m *component.GroupMember) {
		card.Hovered = false
		if !m.Group.Visible(current) {
			return
		}
		rect, _, ok := cardRect(pr, t, card)
		if !ok {
			return
		}
		ps.space.Set(e, rect)
		seen[e] = true
	})

	ecs.ForEach3(w, component.SectionLinkComponent.Kind(), component.TransformComponent.Kind(), component.GroupMemberComponent.Kind(), func(e ecs.Entity, link *component.SectionLink, t *component.Transform, m *component.GroupMember) {
		link.Hovered = false
		label, ok := ecs.Get(w, e, component.LabelComponent.Kind())
		if !ok || !m.Group.Visible(current) {
			return
		}
		rect, ok := labelRect(pr, t, label, narrow)
		if !ok {
			return
		}
		ps.space.Set(e, rect)
		seen[e] = true
	})

	for e := range ps.tracked {
		if !seen[e] {
			ps.space.Remove(e)
		}
	}
	ps.tracked = seen

	x, y := ps.cursor.Position()
	target, ok := ps.space.At(x, y)
	if !ok {
		return
	}
	clicked := ps.cursor.JustClicked()

	if link, ok := ecs.Get(w, target, component.SectionLinkComponent.Kind()); ok {
		link.Hovered = true
		if clicked {
			section.JumpTo(ps.sections, link.Target)
		}
		return
	}

	card, ok := ecs.Get(w, target, component.ProjectCardComponent.Kind())
	if !ok {
		return
	}
	card.Hovered = true

	if clicked && card.Link != "" {
		w.Events().Push(ecs.Event{
			Type: ecs.EventCardActivated,
			Data: ecs.CardActivated{Entity: target, Link: card.Link},
		})
	}
}
