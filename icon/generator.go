package icon

import (
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
)

const fallbackNotice = "Raster backend not available, creating SVG icons instead"

// Generator writes one icon per configured size
type Generator struct {
	config Config
	out    io.Writer
	logger *log.Logger
}

// Result lists the files a run wrote
type Result struct {
	// Icons are the icon paths in size order
	Icons []string

	// Extras are the favicon and contact sheet, when enabled
	Extras []string

	// Fallback is true when SVG was written because the raster backend is missing
	Fallback bool
}

// NewGenerator creates a generator that reports progress to out and warnings to logger
func NewGenerator(config Config, out io.Writer, logger *log.Logger) *Generator {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		config: config,
		out:    out,
		logger: logger,
	}
}

// Run generates every icon in order. It stops at the first failed write.
func (g *Generator) Run() (Result, error) {
	var res Result

	if err := g.config.Validate(); err != nil {
		return res, err
	}

	renderer, fallback, err := NewRenderer(g.config, g.logger)
	if err != nil {
		return res, err
	}
	res.Fallback = fallback
	if fallback {
		fmt.Fprintln(g.out, fallbackNotice)
	}

	if err := os.MkdirAll(g.config.OutputDir, 0755); err != nil {
		return res, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, size := range g.config.Sizes {
		path := IconPath(g.config.OutputDir, size, renderer.Ext())
		if err := writeIcon(path, renderer, size); err != nil {
			return res, err
		}
		res.Icons = append(res.Icons, path)
		fmt.Fprintf(g.out, "Created %s\n", path)
	}

	if err := g.writeExtras(&res, renderer.Ext()); err != nil {
		return res, err
	}

	fmt.Fprintf(g.out, "\nAll icons created successfully!\n")
	return res, nil
}

// writeExtras builds the favicon and contact sheet from the icons just written
func (g *Generator) writeExtras(res *Result, ext string) error {
	if g.config.ICOSize == 0 && !g.config.Sheet {
		return nil
	}

	imgs := make([]image.Image, 0, len(res.Icons))
	for _, path := range res.Icons {
		img, err := LoadIcon(path)
		if err != nil {
			return err
		}
		imgs = append(imgs, img)
	}

	if g.config.ICOSize > 0 {
		if ext != string(FormatPNG) {
			g.logger.Printf("Warning: skipping favicon.ico, it needs PNG icons")
		} else {
			path := filepath.Join(g.config.OutputDir, "favicon.ico")
			if err := WriteICO(path, largest(imgs), g.config.ICOSize); err != nil {
				return err
			}
			res.Extras = append(res.Extras, path)
			fmt.Fprintf(g.out, "Created %s\n", path)
		}
	}

	if g.config.Sheet {
		path := filepath.Join(g.config.OutputDir, "sheet.png")
		if err := WriteSheet(path, imgs); err != nil {
			return err
		}
		res.Extras = append(res.Extras, path)
		fmt.Fprintf(g.out, "Created %s\n", path)
	}
	return nil
}

// writeIcon truncates path and renders a fresh icon into it
func writeIcon(path string, r Renderer, size int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}

	if err := r.Render(file, size); err != nil {
		file.Close()
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func largest(imgs []image.Image) image.Image {
	var best image.Image
	for _, img := range imgs {
		if best == nil || img.Bounds().Dx() > best.Bounds().Dx() {
			best = img
		}
	}
	return best
}
