package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"exticons/icon"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Parse command line flags
	dir := flag.String("dir", "", "Icon directory (or set ICONGEN_DIR env var)")
	sizes := flag.String("sizes", "16,48,128", "Comma-separated icon sizes to show")
	zoom := flag.Int("zoom", 2, "Scale factor of the enlarged row")
	flag.Parse()

	// Get icon directory from flag or environment
	iconDir := *dir
	if iconDir == "" {
		iconDir = os.Getenv("ICONGEN_DIR")
	}
	if iconDir == "" {
		iconDir = icon.DefaultOutputDir
	}

	sizeList, err := icon.ParseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}
	if *zoom < 1 {
		log.Fatalf("Invalid -zoom %d", *zoom)
	}

	var (
		imgs   []image.Image
		labels []string
	)
	for _, size := range sizeList {
		path, ok := icon.FindIcon(iconDir, size, icon.FormatAuto)
		if !ok {
			log.Printf("Warning: no icon for size %d in %s", size, iconDir)
			continue
		}
		img, err := icon.LoadIcon(path)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		imgs = append(imgs, img)
		labels = append(labels, fmt.Sprintf("%s %dx%d", path, img.Bounds().Dx(), img.Bounds().Dy()))
	}
	if len(imgs) == 0 {
		log.Fatalf("No icons found in %s, run exticons first", iconDir)
	}

	p := NewPreview(imgs, labels, *zoom)

	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle("Icon Preview")

	log.Printf("Previewing %d icons from %s (Esc or Q to quit)", len(imgs), iconDir)
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
