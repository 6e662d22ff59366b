package entity

import (
	"fmt"
	"math/rand"

	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/scene"
)

// NewParticleField scatters spec.Count points uniformly in a cube of side
// spec.Spread centred on the origin.
func NewParticleField(w *ecs.World, spec content.ParticleSpec) (ecs.Entity, error) {
	rng := rand.New(rand.NewSource(spec.Seed))
	points := make([]scene.Vec3, spec.Count)
	for i := range points {
		points[i] = scene.Vec3{
			X: (rng.Float64() - 0.5) * spec.Spread,
			Y: (rng.Float64() - 0.5) * spec.Spread,
			Z: (rng.Float64() - 0.5) * spec.Spread,
		}
	}

	field := ecs.CreateEntity(w)
	if err := ecs.Add(w, field, component.ParticleFieldComponent.Kind(), &component.ParticleField{
		Points:      points,
		NarrowCount: spec.NarrowCount,
		Spin:        spec.Spin,
		Size:        spec.Size,
	}); err != nil {
		return 0, fmt.Errorf("particles: add field: %w", err)
	}
	return field, nil
}
