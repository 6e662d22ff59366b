package system

import (
	"strings"

	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/hit"
	"github.com/weihouang/folio/render"
	"github.com/weihouang/folio/scene"
)

var defaultEye = scene.Vec3{Y: 10, Z: 50}

// projectorFor builds the projection for the world's camera and viewport.
func projectorFor(w *ecs.World) render.Projector {
	vp := *w.Viewport()
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = ecs.Viewport{Width: common.BaseWidth, Height: common.BaseHeight}
	}

	eye, target, fov := defaultEye, scene.Vec3{}, 75.0
	if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Rig != nil {
			eye = cam.Eye()
			target = cam.LookAt
			if cam.FOV > 0 {
				fov = cam.FOV
			}
		}
	}
	return render.NewProjector(eye, target, fov, vp.Width, vp.Height)
}

// cardRect returns the on-screen rectangle of a card and the pixel size of
// one world unit at its depth.
func cardRect(pr render.Projector, t *component.Transform, card *component.ProjectCard) (hit.Rect, float64, bool) {
	x, y, ppu, ok := pr.Project(t.World())
	if !ok {
		return hit.Rect{}, 0, false
	}
	s := ppu * t.EffectiveScale()
	w := card.Width * s
	h := card.Height * s
	return hit.Rect{X: x - w/2, Y: y - h/2, W: w, H: h}, s, true
}

// labelScale is the text scale of a label, or false when it is behind the
// camera.
func labelScale(pr render.Projector, t *component.Transform, label *component.Label, narrow bool) (x, y, scale float64, ok bool) {
	x, y, ppu, ok := pr.Project(t.World())
	if !ok {
		return 0, 0, 0, false
	}
	size := label.Size
	if narrow && label.NarrowSize > 0 {
		size = label.NarrowSize
	}
	return x, y, size * ppu * t.EffectiveScale() / render.GlyphHeight, true
}

// labelRect returns the centered on-screen box of a label's text.
func labelRect(pr render.Projector, t *component.Transform, label *component.Label, narrow bool) (hit.Rect, bool) {
	x, y, scale, ok := labelScale(pr, t, label, narrow)
	if !ok {
		return hit.Rect{}, false
	}
	cols, rows := 0, 0
	for _, line := range strings.Split(label.Text, "\n") {
		cols = max(cols, len([]rune(line)))
		rows++
	}
	w := float64(cols) * render.GlyphWidth * scale
	h := float64(rows) * render.GlyphHeight * scale
	return hit.Rect{X: x - w/2, Y: y - h/2, W: w, H: h}, true
}
