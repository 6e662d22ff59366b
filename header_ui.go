package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/section"
	"golang.org/x/image/font/basicfont"
)

var (
	bannerColor = color.NRGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
	headerText  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// HeaderUI is the fixed strip above the scene with the section buttons.
type HeaderUI struct {
	ui      *ebitenui.UI
	section *widget.Text
	theme   *widget.Button
	names   []string
	shown   int

	pointer     PointerRelease
	keyConsumed bool
}

// PointerRelease reports whether a mouse button or touch was released this
// frame. ebitenui fires button clicks on release.
type PointerRelease interface {
	JustReleased() bool
}

type ebitenPointer struct{}

func (ebitenPointer) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0
}

// NewHeaderUI builds the header. The buttons drive nav directly; onTheme is
// called when the theme button is clicked.
func NewHeaderUI(spec *content.Spec, nav section.Controller, onTheme func()) *HeaderUI {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	bannerImg := imageui.NewNineSliceColor(bannerColor)
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	h := &HeaderUI{shown: -1, pointer: ebitenPointer{}}
	for _, sec := range spec.Sections {
		h.names = append(h.names, sec.Name)
	}

	btnTextColor := &widget.ButtonTextColor{Idle: headerText}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
	button := func(label string, onClick func()) *widget.Button {
		onClick = h.guard(onClick)
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(rowData, widget.WidgetOpts.MinSize(64, 24)),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	initials := spec.Initials
	if initials == "" {
		initials = "Home"
	}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)
	bar.AddChild(button(initials, func() { section.JumpTo(nav, 0) }))
	bar.AddChild(button("Prev", nav.Retreat))
	bar.AddChild(button("Next", nav.Advance))
	h.theme = button("Theme", func() {
		if onTheme != nil {
			onTheme()
		}
	})
	bar.AddChild(h.theme)

	h.section = widget.NewText(
		widget.TextOpts.Text("", &face, headerText),
		widget.TextOpts.WidgetOpts(rowData),
	)
	bar.AddChild(h.section)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
			StretchHorizontal:  true,
		})),
	)

	if spec.Banner != "" {
		banner := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(bannerImg),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 16, Right: 16}),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
		)
		banner.AddChild(widget.NewText(
			widget.TextOpts.Text(spec.Banner, &face, color.NRGBA{A: 0xff}),
		))
		column.AddChild(banner)
	}
	column.AddChild(bar)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(column)

	h.ui = &ebitenui.UI{Container: root}
	h.SetSection(nav.Current())
	return h
}

// Update runs the widgets for one frame. keyConsumed is true when a section
// key was handled this frame; the header then only reacts to the pointer.
func (h *HeaderUI) Update(keyConsumed bool) {
	h.keyConsumed = keyConsumed
	h.ui.Update()
}

// guard drops keyboard-driven activations on frames whose key press already
// moved the section.
func (h *HeaderUI) guard(fn func()) func() {
	return func() {
		if h.keyConsumed && (h.pointer == nil || !h.pointer.JustReleased()) {
			return
		}
		fn()
	}
}

// SetSection updates the section label when the index changed.
func (h *HeaderUI) SetSection(i int) {
	if i == h.shown {
		return
	}
	h.shown = i
	h.section.Label = h.SectionLabel(i)
}

func (h *HeaderUI) SectionLabel(i int) string {
	if i < 0 || i >= len(h.names) {
		return ""
	}
	return h.names[i]
}

// SetDark labels the theme button with the theme a click switches to.
func (h *HeaderUI) SetDark(dark bool) {
	label := "Dark"
	if dark {
		label = "Light"
	}
	if text := h.theme.Text(); text != nil {
		text.Label = label
	}
}
