package component

import "image/color"

// Tint is the colour and opacity an entity is drawn with. A zero Color
// means the theme's foreground.
type Tint struct {
	Color color.NRGBA
	Alpha float64
}

var TintComponent = NewComponent[Tint]()
