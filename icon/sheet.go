package icon

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Layout places tiles of the given sizes left to right, separated and framed by
// margin, each vertically centered on the tallest tile. It returns the tile
// rectangles and the total canvas size.
func Layout(sizes []int, margin int) ([]image.Rectangle, image.Point) {
	tallest := 0
	for _, s := range sizes {
		if s > tallest {
			tallest = s
		}
	}

	tiles := make([]image.Rectangle, 0, len(sizes))
	x := margin
	for _, s := range sizes {
		y := margin + (tallest-s)/2
		tiles = append(tiles, image.Rect(x, y, x+s, y+s))
		x += s + margin
	}

	return tiles, image.Pt(x, tallest+2*margin)
}

// WriteSheet draws every image on one dark canvas and saves it as PNG
func WriteSheet(path string, imgs []image.Image) error {
	sizes := make([]int, len(imgs))
	for i, img := range imgs {
		b := img.Bounds()
		sizes[i] = max(b.Dx(), b.Dy())
	}
	tiles, canvasSize := Layout(sizes, defaultSheetMargin)

	sheet := image.NewNRGBA(image.Rectangle{Max: canvasSize})
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	for i, img := range imgs {
		// A frame one pixel wider than the tile, so transparent corners stay visible
		frame := tiles[i].Inset(-1)
		draw.Draw(sheet, frame, image.NewUniform(ColorTile), image.Point{}, draw.Src)
		draw.Draw(sheet, tiles[i], img, img.Bounds().Min, draw.Over)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sheet file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, sheet); err != nil {
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	return f.Close()
}
