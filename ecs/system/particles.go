package system

import (
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
)

type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ParticleFieldComponent.Kind(), func(_ ecs.Entity, field *component.ParticleField) {
		field.Rotation += field.Spin
	})
}
