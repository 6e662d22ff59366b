package system

import (
	"math"

	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
)

// OrbitSystem turns left-button drags into camera orbit around the look-at
// point. A full viewport height of drag is one turn. There is no zoom.
type OrbitSystem struct {
	cursor   Cursor
	dragging bool
	lastX    float64
	lastY    float64
}

func NewOrbitSystem(cursor Cursor) *OrbitSystem {
	return &OrbitSystem{cursor: cursor}
}

func (o *OrbitSystem) Update(w *ecs.World) {
	if w == nil || o.cursor == nil {
		return
	}
	if !o.cursor.Pressed() {
		o.dragging = false
		return
	}

	x, y := o.cursor.Position()
	if !o.dragging {
		o.dragging = true
		o.lastX, o.lastY = x, y
		return
	}
	dx, dy := x-o.lastX, y-o.lastY
	o.lastX, o.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}

	height := w.Viewport().Height
	if height <= 0 {
		height = common.BaseHeight
	}
	speed := 2 * math.Pi / height
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		if cam.Rig == nil {
			return
		}
		cam.Orbit.Rotate(-dx*speed, -dy*speed, cam.Rig.Position, cam.LookAt)
	})
}
