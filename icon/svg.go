package icon

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVGRenderer writes the vector fallback icon. It needs no fonts or image
// encoders, so it is always available.
type SVGRenderer struct {
	glyph   string
	palette Palette
}

// NewSVGRenderer creates an SVG renderer
func NewSVGRenderer(glyph string, palette Palette) *SVGRenderer {
	return &SVGRenderer{glyph: glyph, palette: palette}
}

// Ext returns "svg"
func (r *SVGRenderer) Ext() string {
	return string(FormatSVG)
}

// Render writes a rounded square with a diagonal gradient and the glyph centered on it
func (r *SVGRenderer) Render(w io.Writer, size int) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	canvas.Startview(size, size, 0, 0, size, size)

	canvas.Def()
	canvas.LinearGradient(gradientID, 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: hexColor(r.palette.Top), Opacity: 1},
		{Offset: 100, Color: hexColor(r.palette.Bottom), Opacity: 1},
	})
	canvas.DefEnd()

	radius := size / 8
	canvas.Roundrect(0, 0, size, size, radius, radius, fmt.Sprintf(`fill="url(#%s)"`, gradientID))

	canvas.Text(size/2, size/2, r.glyph,
		fmt.Sprintf(`font-family="%s"`, svgFontFamily),
		fmt.Sprintf(`font-size="%d"`, size/2),
		fmt.Sprintf(`fill="%s"`, hexColor(r.palette.Text)),
		`text-anchor="middle"`,
		`dominant-baseline="central"`,
		`font-weight="bold"`,
	)

	canvas.End()
	return bw.Flush()
}
