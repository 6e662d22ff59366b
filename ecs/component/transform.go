package component

import "github.com/weihouang/folio/scene"

// Transform places an entity in world space. OffsetY is written by section
// transitions and IdleY by idle motion; both add to Position.Y.
type Transform struct {
	Position scene.Vec3
	OffsetY  float64
	IdleY    float64
	Scale    float64
}

// World returns the effective world position.
func (t *Transform) World() scene.Vec3 {
	p := t.Position
	p.Y += t.OffsetY + t.IdleY
	return p
}

// EffectiveScale treats an unset scale as 1.
func (t *Transform) EffectiveScale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

var TransformComponent = NewComponent[Transform]()
