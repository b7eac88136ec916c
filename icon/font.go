//go:build !svgonly

package icon

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// glyphFont is the parsed font used for every icon size
type glyphFont struct {
	font   *opentype.Font
	source string
}

// loadGlyphFont parses the TrueType font at path. If that fails it falls back
// to the bundled Go Bold font, and err reports why the preferred font was skipped.
func loadGlyphFont(path string) (gf glyphFont, err error) {
	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			var f *opentype.Font
			f, err = opentype.Parse(data)
			if err == nil {
				return glyphFont{font: f, source: path}, nil
			}
			err = fmt.Errorf("failed to parse font %s: %w", path, err)
		} else {
			err = fmt.Errorf("failed to read font: %w", err)
		}
	}

	f, parseErr := opentype.Parse(gobold.TTF)
	if parseErr != nil {
		// face falls back to basicfont
		return glyphFont{source: "basicfont"}, err
	}
	return glyphFont{font: f, source: "gobold"}, err
}

// face returns a face whose em size is half the icon size
func (gf glyphFont) face(size int) font.Face {
	if gf.font == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(gf.font, &opentype.FaceOptions{
		Size:    float64(size / 2),
		DPI:     DefaultFontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
