package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/weihouang/folio/common"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/render"
	"github.com/weihouang/folio/section"
)

type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA
	Panel      color.NRGBA
	Muted      color.NRGBA
	Accent     color.NRGBA
}

var (
	DarkTheme = Theme{
		Background: color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Panel:      color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xe6},
		Muted:      color.NRGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
		Accent:     color.NRGBA{R: 0x60, G: 0xa5, B: 0xfa, A: 0xff},
	}
	LightTheme = Theme{
		Background: color.NRGBA{R: 0xf9, G: 0xfa, B: 0xfb, A: 0xff},
		Foreground: color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Panel:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6},
		Muted:      color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff},
		Accent:     color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
	}

	hoverColor = color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
)

const (
	minTextScale   = 0.15
	lineSpacing    = render.GlyphHeight * 1.3
	cardWrapColumn = 34
)

type RenderSystem struct {
	sections section.Reader
	dark     bool
	debug    bool
	qr       *render.QRCache
}

func NewRenderSystem(sections section.Reader, dark, debug bool) *RenderSystem {
	return &RenderSystem{sections: sections, dark: dark, debug: debug, qr: render.NewQRCache()}
}

func (r *RenderSystem) SetDark(dark bool) { r.dark = dark }

func (r *RenderSystem) Dark() bool { return r.dark }

func (r *RenderSystem) Theme() Theme {
	if r.dark {
		return DarkTheme
	}
	return LightTheme
}

// Update is a no-op; drawing happens in Draw.
func (r *RenderSystem) Update(*ecs.World) {}

type drawable struct {
	e     ecs.Entity
	layer int
	depth float64
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	theme := r.Theme()
	screen.Fill(theme.Background)

	pr := projectorFor(w)
	narrow := w.Viewport().Narrow(common.NarrowWidth)
	eye := defaultEye
	if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Rig != nil {
			eye = cam.Eye()
		}
	}

	ecs.ForEach(w, component.ParticleFieldComponent.Kind(), func(_ ecs.Entity, field *component.ParticleField) {
		r.drawParticles(screen, pr, field, narrow, theme)
	})

	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TintComponent.Kind(), func(e ecs.Entity, t *component.Transform, _ *component.Tint) {
		layer := 0
		if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = rl.Index
		}
		items = append(items, drawable{e: e, layer: layer, depth: t.World().Sub(eye).Len()})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		tint, _ := ecs.Get(w, it.e, component.TintComponent.Kind())
		if tint.Alpha < 0.01 {
			continue
		}
		if card, ok := ecs.Get(w, it.e, component.ProjectCardComponent.Kind()); ok {
			r.drawCard(screen, pr, t, tint, card, theme)
			continue
		}
		if label, ok := ecs.Get(w, it.e, component.LabelComponent.Kind()); ok {
			link, _ := ecs.Get(w, it.e, component.SectionLinkComponent.Kind())
			r.drawLabel(screen, pr, t, tint, label, link != nil && link.Hovered, narrow, theme)
		}
	}

	if r.debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawParticles(screen *ebiten.Image, pr render.Projector, field *component.ParticleField, narrow bool, theme Theme) {
	n := len(field.Points)
	if narrow && field.NarrowCount > 0 && field.NarrowCount < n {
		n = field.NarrowCount
	}
	clr := theme.Foreground
	for _, p := range field.Points[:n] {
		x, y, ppu, ok := pr.Project(p.RotateY(field.Rotation))
		if !ok {
			continue
		}
		size := common.Clamp(field.Size*ppu, 1, 4)
		vector.DrawFilledRect(screen, float32(x-size/2), float32(y-size/2), float32(size), float32(size), clr, false)
	}
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, pr render.Projector, t *component.Transform, tint *component.Tint, label *component.Label, hovered, narrow bool, theme Theme) {
	x, y, scale, ok := labelScale(pr, t, label, narrow)
	if !ok || scale < minTextScale {
		return
	}
	clr := r.colorFor(tint, theme)
	if hovered {
		clr = hoverColor
	}
	drawText(screen, label.Text, x, y, scale, clr, tint.Alpha, text.AlignCenter, text.AlignCenter)
}

func (r *RenderSystem) drawCard(screen *ebiten.Image, pr render.Projector, t *component.Transform, tint *component.Tint, card *component.ProjectCard, theme Theme) {
	rect, ppu, ok := cardRect(pr, t, card)
	if !ok || rect.Empty() {
		return
	}

	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), fade(theme.Panel, tint.Alpha), false)
	border := theme.Muted
	if card.Hovered {
		border = hoverColor
	}
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, fade(border, tint.Alpha), false)

	scale := 1.1 * ppu / render.GlyphHeight
	if scale < minTextScale {
		return
	}
	pad := 0.8 * ppu
	x := rect.X + pad
	y := rect.Y + pad

	drawText(screen, card.Title, x, y, scale*1.3, theme.Accent, tint.Alpha, text.AlignStart, text.AlignStart)
	y += lineSpacing * scale * 1.6

	desc := strings.Join(render.Wrap(card.Description, cardWrapColumn), "\n")
	drawText(screen, desc, x, y, scale, r.colorFor(tint, theme), tint.Alpha, text.AlignStart, text.AlignStart)
	y += lineSpacing * scale * (float64(strings.Count(desc, "\n")) + 1.5)

	if len(card.Tech) > 0 {
		drawText(screen, strings.Join(card.Tech, " / "), x, y, scale*0.9, theme.Muted, tint.Alpha, text.AlignStart, text.AlignStart)
	}

	if card.Link != "" {
		link := "View Project ->"
		if card.Hovered {
			link = "Click to copy & open ->"
			r.drawQR(screen, card.Link, rect.X+rect.W-pad, rect.Y+rect.H-pad, min(rect.W, rect.H)*0.35, tint.Alpha)
		}
		drawText(screen, link, x, rect.Y+rect.H-pad, scale, theme.Accent, tint.Alpha, text.AlignStart, text.AlignEnd)
	}
}

// drawQR draws link's QR code with its bottom-right corner at right,bottom
// on a light backing square of the given side.
func (r *RenderSystem) drawQR(screen *ebiten.Image, link string, right, bottom, side, alpha float64) {
	bm, err := r.qr.Bitmap(link)
	if err != nil || len(bm) == 0 || side < float64(len(bm)) {
		return
	}
	module := math.Floor(side / float64(len(bm)+2))
	size := module * float64(len(bm)+2)
	x0, y0 := right-size, bottom-size
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(size), float32(size), fade(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, alpha), false)
	dark := fade(color.NRGBA{A: 0xff}, alpha)
	for row, cells := range bm {
		for col, on := range cells {
			if !on {
				continue
			}
			x := x0 + module*float64(col+1)
			y := y0 + module*float64(row+1)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(module), float32(module), dark, false)
		}
	}
}

func (r *RenderSystem) colorFor(tint *component.Tint, theme Theme) color.NRGBA {
	if tint.Color.A == 0 {
		return theme.Foreground
	}
	return tint.Color
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  frame: %d\n", ebiten.ActualFPS(), w.Clock().Frame)
	current := 0
	if r.sections != nil {
		current = r.sections.Current()
		fmt.Fprintf(&b, "section: %d\n", current)
	}
	ecs.ForEach(w, component.SceneGroupComponent.Kind(), func(_ ecs.Entity, sg *component.SceneGroup) {
		fmt.Fprintf(&b, "%-10s %s\n", sg.Group.Name, sg.Group.Phase(current, 1e-3))
	})
	if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Rig != nil {
			p := cam.Eye()
			fmt.Fprintf(&b, "camera: %.2f %.2f %.2f  orbit: %.2f %.2f\n", p.X, p.Y, p.Z, cam.Orbit.Azimuth, cam.Orbit.Polar)
		}
	}
	ebitenutil.DebugPrintAt(screen, b.String(), 4, 80)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.NRGBA, alpha float64, primary, secondary text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	text.Draw(screen, s, render.Face(), op)
}

func fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * common.Clamp(alpha, 0, 1))
	return c
}
