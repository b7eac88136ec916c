package icon

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"os"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// WriteICO scales src into a size x size favicon and writes it to path
func WriteICO(path string, src image.Image, size int) error {
	dst := scaleImage(src, size)

	var buf bytes.Buffer
	if err := ico.Encode(&buf, dst); err != nil {
		return fmt.Errorf("failed to encode ico: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// scaleImage fits src into a transparent size x size square, keeping its aspect ratio
func scaleImage(src image.Image, size int) *image.NRGBA {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()
	scale := math.Min(float64(size)/float64(srcW), float64(size)/float64(srcH))
	newW := int(math.Round(float64(srcW) * scale))
	newH := int(math.Round(float64(srcH) * scale))

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	offX := (size - newW) / 2
	offY := (size - newH) / 2
	dr := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.CatmullRom.Scale(dst, dr, src, srcBounds, draw.Over, nil)
	return dst
}
