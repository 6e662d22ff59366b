package system

import (
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/section"
)

// SectionInputSystem polls the section key binding. It must run before any
// system that reads the section so the same frame sees the new index.
type SectionInputSystem struct {
	binding  *section.Binding
	consumed bool
}

func NewSectionInputSystem(binding *section.Binding) *SectionInputSystem {
	return &SectionInputSystem{binding: binding}
}

func (s *SectionInputSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}
	s.consumed = s.binding != nil && s.binding.Poll()
}

// Consumed reports whether this frame's key press was a section key. Other
// keyboard consumers skip the frame when it was.
func (s *SectionInputSystem) Consumed() bool {
	return s != nil && s.consumed
}
