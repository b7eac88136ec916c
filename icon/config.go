package icon

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects which renderer writes the icons
type Format string

const (
	// FormatAuto uses PNG when the raster backend is built in, SVG otherwise
	FormatAuto Format = "auto"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Config holds icon generation settings
type Config struct {
	// OutputDir is the directory icons are written to
	OutputDir string `yaml:"output_dir"`

	// Sizes lists the square icon sizes in pixels, one file per size
	Sizes []int `yaml:"sizes"`

	// Format is auto, png or svg
	Format Format `yaml:"format"`

	// Glyph is the text drawn in the middle of every icon
	Glyph string `yaml:"glyph"`

	// FontPath is the preferred TrueType font. The bundled Go Bold font is used
	// when it cannot be loaded.
	FontPath string `yaml:"font_path"`

	// TopColor and BottomColor are the gradient end points as hex strings
	TopColor    string `yaml:"top_color"`
	BottomColor string `yaml:"bottom_color"`

	// TextColor is the glyph color as a hex string
	TextColor string `yaml:"text_color"`

	// Rounded masks PNG icons with the same corner radius the SVG uses
	Rounded bool `yaml:"rounded"`

	// ICOSize writes favicon.ico at this size when greater than zero
	ICOSize int `yaml:"ico_size"`

	// Sheet writes sheet.png with every icon side by side
	Sheet bool `yaml:"sheet"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		OutputDir:   DefaultOutputDir,
		Sizes:       append([]int(nil), DefaultSizes...),
		Format:      FormatAuto,
		Glyph:       DefaultGlyph,
		FontPath:    DefaultFontPath,
		TopColor:    DefaultTopColor,
		BottomColor: DefaultBottomColor,
		TextColor:   DefaultTextColor,
	}
}

// LoadConfig reads a YAML file on top of the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the renderers cannot use
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if len(c.Sizes) == 0 {
		return errors.New("at least one icon size is required")
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("invalid icon size %d", size)
		}
		if seen[size] {
			return fmt.Errorf("duplicate icon size %d", size)
		}
		seen[size] = true
	}
	switch c.Format {
	case FormatAuto, FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("unknown format %q (want auto, png or svg)", c.Format)
	}
	if c.Glyph == "" {
		return errors.New("glyph must not be empty")
	}
	if c.ICOSize < 0 || c.ICOSize > 256 {
		return fmt.Errorf("invalid ico size %d (want 1-256)", c.ICOSize)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// ParseSizes parses a comma-separated list such as "16,48,128"
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}
