package scene

import (
	"math"

	"github.com/weihouang/folio/common"
)

// Orbit is a user-driven rotation of the eye around its look-at point.
// Azimuth and Polar are offsets in radians added to the spherical angles of
// the unrotated eye. The resulting polar angle, measured from +Y, stays in
// [MinPolar, MaxPolar], widened to include the unrotated eye so a section
// viewpoint outside the limits is shown as authored. The distance to the
// target never changes.
type Orbit struct {
	Azimuth  float64
	Polar    float64
	MinPolar float64
	MaxPolar float64
}

func spherical(v Vec3) (r, polar, azimuth float64) {
	r = v.Len()
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Acos(common.Clamp(v.Y/r, -1, 1)), math.Atan2(v.X, v.Z)
}

func (o *Orbit) limits(base float64) (float64, float64) {
	lo, hi := o.MinPolar, o.MaxPolar
	if hi <= lo {
		return 0, math.Pi
	}
	return math.Min(lo, base), math.Max(hi, base)
}

// Apply returns eye rotated around target by the orbit offsets.
func (o *Orbit) Apply(eye, target Vec3) Vec3 {
	if o == nil {
		return eye
	}
	r, polar, azimuth := spherical(eye.Sub(target))
	if r == 0 {
		return eye
	}
	if o.Azimuth == 0 && o.Polar == 0 {
		return eye
	}
	lo, hi := o.limits(polar)
	polar = common.Clamp(polar+o.Polar, lo, hi)
	azimuth += o.Azimuth
	s, c := math.Sincos(polar)
	return target.Add(Vec3{
		X: r * s * math.Sin(azimuth),
		Y: r * c,
		Z: r * s * math.Cos(azimuth),
	})
}

// Rotate adds a drag delta. The polar offset is clamped against the current
// base eye so dragging past a limit does not build up slack.
func (o *Orbit) Rotate(dAzimuth, dPolar float64, eye, target Vec3) {
	if o == nil {
		return
	}
	o.Azimuth = math.Mod(o.Azimuth+dAzimuth, 2*math.Pi)
	_, base, _ := spherical(eye.Sub(target))
	lo, hi := o.limits(base)
	o.Polar = common.Clamp(o.Polar+dPolar, lo-base, hi-base)
}
