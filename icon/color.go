package icon

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the resolved colors of an icon
type Palette struct {
	Top    color.RGBA
	Bottom color.RGBA
	Text   color.RGBA
}

// Palette resolves the configured hex colors
func (c Config) Palette() (Palette, error) {
	top, err := parseHex("top_color", c.TopColor)
	if err != nil {
		return Palette{}, err
	}
	bottom, err := parseHex("bottom_color", c.BottomColor)
	if err != nil {
		return Palette{}, err
	}
	text, err := parseHex("text_color", c.TextColor)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Top: top, Bottom: bottom, Text: text}, nil
}

// Row returns the gradient color of row y in an icon of the given size.
// Channels are interpolated with fraction y/size and truncated, so row 0 is
// exactly Top and the last row stops one step short of Bottom.
func (p Palette) Row(y, size int) color.RGBA {
	t := float64(y) / float64(size)
	return color.RGBA{
		R: lerp(p.Top.R, p.Bottom.R, t),
		G: lerp(p.Top.G, p.Bottom.G, t),
		B: lerp(p.Top.B, p.Bottom.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + float64(int(b)-int(a))*t))
}

// hexColor formats c as #rrggbb
func hexColor(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func parseHex(name, s string) (color.RGBA, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
