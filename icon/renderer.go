package icon

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
)

// ErrRasterUnavailable is returned when PNG output is requested from a binary
// built without the raster backend (the svgonly build tag).
var ErrRasterUnavailable = errors.New("raster backend not available")

// Renderer writes one icon of the given size
type Renderer interface {
	// Ext is the file extension of the rendered icon, without the dot
	Ext() string

	// Render encodes a size x size icon to w
	Render(w io.Writer, size int) error
}

type rasterFactory func(cfg Config, palette Palette, logger *log.Logger) (Renderer, error)

// newRaster is set by the raster backend when it is compiled in
var newRaster rasterFactory

func registerRaster(f rasterFactory) {
	newRaster = f
}

// RasterAvailable reports whether PNG icons can be produced
func RasterAvailable() bool {
	return newRaster != nil
}

// NewRenderer picks the renderer for cfg.Format. fallback is true when auto
// mode had to settle for SVG because the raster backend is missing.
func NewRenderer(cfg Config, logger *log.Logger) (r Renderer, fallback bool, err error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, false, err
	}

	switch cfg.Format {
	case FormatSVG:
		return NewSVGRenderer(cfg.Glyph, palette), false, nil
	case FormatPNG:
		if !RasterAvailable() {
			return nil, false, ErrRasterUnavailable
		}
		r, err := newRaster(cfg, palette, logger)
		return r, false, err
	case FormatAuto:
		if !RasterAvailable() {
			return NewSVGRenderer(cfg.Glyph, palette), true, nil
		}
		r, err := newRaster(cfg, palette, logger)
		return r, false, err
	default:
		return nil, false, fmt.Errorf("unknown format %q", cfg.Format)
	}
}

// IconPath returns the output path of the icon with the given size and extension
func IconPath(dir string, size int, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.%s", size, ext))
}
