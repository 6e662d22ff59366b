package component

import "github.com/weihouang/folio/scene"

type Camera struct {
	Rig *scene.CameraRig
	// FOV is the vertical field of view in degrees.
	FOV    float64
	LookAt scene.Vec3
	Orbit  scene.Orbit
}

// Eye is the rig position with the drag orbit applied.
func (c *Camera) Eye() scene.Vec3 {
	if c == nil || c.Rig == nil {
		return scene.Vec3{}
	}
	return c.Orbit.Apply(c.Rig.Position, c.LookAt)
}

var CameraComponent = NewComponent[Camera]()
