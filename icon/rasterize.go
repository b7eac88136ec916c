package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// LoadIcon reads a generated icon back as an image. SVG icons are rasterized
// at their viewBox size.
func LoadIcon(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return img, nil
	case ".svg":
		icon, err := readSVG(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("%s has no usable viewBox", path)
		}
		return rasterizeIcon(icon, w, h), nil
	default:
		return nil, fmt.Errorf("unsupported icon type %s", path)
	}
}

// RasterizeSVG converts SVG data to an image of the given size
func RasterizeSVG(svgData []byte, width, height int) (image.Image, error) {
	icon, err := readSVG(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	return rasterizeIcon(icon, width, height), nil
}

// readSVG parses an SVG stream. Elements oksvg cannot draw, such as <text>, are skipped.
func readSVG(r io.Reader) (*oksvg.SvgIcon, error) {
	return oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
}

func rasterizeIcon(icon *oksvg.SvgIcon, width, height int) *image.RGBA {
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img
}
