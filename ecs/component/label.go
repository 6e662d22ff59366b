package component

// Label is world-space text. Size is the glyph height in world units;
// NarrowSize replaces it in the compact layout when non-zero.
type Label struct {
	Text       string
	Size       float64
	NarrowSize float64
}

var LabelComponent = NewComponent[Label]()
