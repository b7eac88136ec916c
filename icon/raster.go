//go:build !svgonly

package icon

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func init() {
	registerRaster(newPNGRenderer)
}

// PNGRenderer draws gradient icons with a centered glyph
type PNGRenderer struct {
	glyph   string
	palette Palette
	font    glyphFont
	rounded bool
}

func newPNGRenderer(cfg Config, palette Palette, logger *log.Logger) (Renderer, error) {
	gf, err := loadGlyphFont(cfg.FontPath)
	if err != nil && cfg.FontPath != DefaultFontPath && logger != nil {
		// Only an explicitly chosen font is worth a warning
		logger.Printf("Warning: %v, using %s", err, gf.source)
	}
	return &PNGRenderer{
		glyph:   cfg.Glyph,
		palette: palette,
		font:    gf,
		rounded: cfg.Rounded,
	}, nil
}

// Ext returns "png"
func (r *PNGRenderer) Ext() string {
	return string(FormatPNG)
}

// Render encodes a size x size PNG icon to w
func (r *PNGRenderer) Render(w io.Writer, size int) error {
	return png.Encode(w, r.Draw(size))
}

// Draw paints the icon: one gradient color per row, then the glyph on top
func (r *PNGRenderer) Draw(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	for y := 0; y < size; y++ {
		row := image.Rect(0, y, size, y+1)
		draw.Draw(img, row, image.NewUniform(r.palette.Row(y, size)), image.Point{}, draw.Src)
	}

	r.drawGlyph(img, size)

	if !r.rounded {
		return img
	}

	// Cut the corners to the SVG's radius, leaving them transparent
	out := image.NewRGBA(img.Bounds())
	draw.DrawMask(out, out.Bounds(), img, image.Point{}, roundedMask(size, size/8), image.Point{}, draw.Src)
	return out
}

// drawGlyph centers the glyph's ink box, not its advance box
func (r *PNGRenderer) drawGlyph(img *image.RGBA, size int) {
	face := r.font.face(size)
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.palette.Text),
		Face: face,
	}

	bounds, _ := d.BoundString(r.glyph)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()

	x := (size-(maxX-minX))/2 - minX
	y := (size-(maxY-minY))/2 - minY
	d.Dot = fixed.P(x, y)
	d.DrawString(r.glyph)
}

// roundedMask returns an alpha mask of a size x size rounded rectangle
func roundedMask(size, radius int) *image.Alpha {
	s, rad := float32(size), float32(radius)
	// Control point offset for a quarter circle drawn as one cubic
	k := rad * 0.5523

	z := vector.NewRasterizer(size, size)
	z.MoveTo(rad, 0)
	z.LineTo(s-rad, 0)
	z.CubeTo(s-rad+k, 0, s, rad-k, s, rad)
	z.LineTo(s, s-rad)
	z.CubeTo(s, s-rad+k, s-rad+k, s, s-rad, s)
	z.LineTo(rad, s)
	z.CubeTo(rad-k, s, 0, s-rad+k, 0, s-rad)
	z.LineTo(0, rad)
	z.CubeTo(0, rad-k, rad-k, 0, rad, 0)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
