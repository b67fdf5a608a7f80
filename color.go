package pencil

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an opaque color value attached to a cell.
//
// The raster engine never looks inside a Color; only concrete paint engines
// resolve it into channel values when they fill a rectangle.
type Color string

// Background is the color surfaces clear to.
var Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// RGBA resolves the color as a CSS color name ("red", "cornflowerblue") or a
// hex triplet ("#f00", "#ff0000").
func (c Color) RGBA() (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if rgba, ok := colornames.Map[s]; ok {
		return rgba, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unsupported color %q: %w", string(c), err)
	}

	r, g, b := parsed.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
