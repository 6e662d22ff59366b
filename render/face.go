package render

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GlyphHeight is the pixel height of the base face; world-space text sizes
// are scaled relative to it.
const GlyphHeight = 13.0

// GlyphWidth is the advance of every glyph in the base face.
const GlyphWidth = 7.0

// Face returns the shared bitmap text face.
func Face() text.Face {
	return face
}

var face text.Face = text.NewGoXFace(basicfont.Face7x13)

// Wrap splits s into lines of at most width characters, breaking on spaces.
// Existing line breaks are kept.
func Wrap(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if width > 0 && len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return out
}
