package ecs

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// RenderSystem draws a world each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

type registration struct {
	system System
}

// Scheduler runs registered systems in registration order.
type Scheduler struct {
	mu      sync.Mutex
	entries []*registration
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Register(sys)
	}
	return s
}

// Register appends system to the update order and returns a function that
// removes it. The returned function is safe to call more than once.
func (s *Scheduler) Register(system System) func() {
	if system == nil {
		return func() {}
	}
	reg := &registration{system: system}
	s.mu.Lock()
	s.entries = append(s.entries, reg)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unregister(reg) })
	}
}

func (s *Scheduler) unregister(reg *registration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.entries {
		if r == reg {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *Scheduler) Systems() []System {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems := make([]System, 0, len(s.entries))
	for _, r := range s.entries {
		systems = append(systems, r.system)
	}
	return systems
}

// Update runs every system once, then drops undrained events.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.Systems() {
		system.Update(w)
	}
	w.Events().flush()
}

// Draw calls every registered system that also renders.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, system := range s.Systems() {
		if rs, ok := system.(RenderSystem); ok {
			rs.Draw(w, screen)
		}
	}
}
