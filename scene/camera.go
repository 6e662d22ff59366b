package scene

import (
	"math"

	"github.com/weihouang/folio/common"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp moves each axis toward o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		common.Lerp(v.X, o.X, t),
		common.Lerp(v.Y, o.Y, t),
		common.Lerp(v.Z, o.Z, t),
	}
}

// RotateY rotates v around the Y axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// CameraRig eases a camera position toward a fixed point per section.
type CameraRig struct {
	Position Vec3
	Targets  []Vec3
}

// Target returns the camera point for section. Indexes outside the table
// clamp to its ends.
func (r *CameraRig) Target(section int) Vec3 {
	if r == nil || len(r.Targets) == 0 {
		return Vec3{}
	}
	return r.Targets[common.ClampInt(section, 0, len(r.Targets)-1)]
}

func (r *CameraRig) Step(section int, factor float64) {
	if r == nil || len(r.Targets) == 0 {
		return
	}
	r.Position = r.Position.Lerp(r.Target(section), factor)
}
