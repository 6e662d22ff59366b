// Package render holds the camera projection and text faces shared by the
// draw and pointer systems.
package render

import (
	"math"

	"github.com/weihouang/folio/scene"
)

const nearPlane = 0.1

// Projector maps world points to screen pixels for a pinhole camera at Eye
// looking at Target with +Y up.
type Projector struct {
	eye                scene.Vec3
	right, up, forward scene.Vec3
	focal              float64
	centerX, centerY   float64
}

// NewProjector builds a projector for a screen of width x height pixels and
// a vertical field of view in degrees.
func NewProjector(eye, target scene.Vec3, fovDeg, width, height float64) Projector {
	forward := target.Sub(eye).Normalize()
	if forward.Len() == 0 {
		forward = scene.Vec3{Z: -1}
	}
	worldUp := scene.Vec3{Y: 1}
	right := forward.Cross(worldUp).Normalize()
	if right.Len() == 0 {
		right = scene.Vec3{X: 1}
	}
	up := right.Cross(forward)

	if fovDeg <= 0 || fovDeg >= 180 {
		fovDeg = 75
	}
	focal := (height / 2) / math.Tan(fovDeg*math.Pi/360)

	return Projector{
		eye:     eye,
		right:   right,
		up:      up,
		forward: forward,
		focal:   focal,
		centerX: width / 2,
		centerY: height / 2,
	}
}

// Project returns the screen position of p and the number of pixels one
// world unit covers at p's depth. ok is false for points behind the near
// plane.
func (pr Projector) Project(p scene.Vec3) (x, y, pixelsPerUnit float64, ok bool) {
	rel := p.Sub(pr.eye)
	depth := rel.Dot(pr.forward)
	if depth < nearPlane {
		return 0, 0, 0, false
	}
	ppu := pr.focal / depth
	x = pr.centerX + rel.Dot(pr.right)*ppu
	y = pr.centerY - rel.Dot(pr.up)*ppu
	return x, y, ppu, true
}
