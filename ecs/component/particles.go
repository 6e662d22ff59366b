package component

import "github.com/weihouang/folio/scene"

// ParticleField is a static cloud of points slowly spun about Y.
type ParticleField struct {
	Points []scene.Vec3
	// NarrowCount limits how many points are drawn in the compact layout.
	NarrowCount int
	Rotation    float64
	Spin        float64
	Size        float64
}

var ParticleFieldComponent = NewComponent[ParticleField]()
