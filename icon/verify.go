package icon

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Check is the result of verifying one expected icon
type Check struct {
	Path   string
	Size   int
	Width  int
	Height int
	Bytes  int64
	Err    error
}

// OK reports whether the icon exists with the expected dimensions
func (c Check) OK() bool {
	return c.Err == nil
}

func (c Check) String() string {
	if c.Err != nil {
		return fmt.Sprintf("✗ %s: %v", c.Path, c.Err)
	}
	return fmt.Sprintf("✓ %s (%.2f KB, %dx%d)", c.Path, float64(c.Bytes)/1024, c.Width, c.Height)
}

// FindIcon returns the path of the icon for size in dir. FormatAuto prefers
// PNG over SVG; FormatPNG and FormatSVG look for that extension only.
func FindIcon(dir string, size int, format Format) (string, bool) {
	exts := []Format{FormatPNG, FormatSVG}
	if format == FormatPNG || format == FormatSVG {
		exts = []Format{format}
	}
	for _, ext := range exts {
		path := IconPath(dir, size, string(ext))
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return IconPath(dir, size, string(exts[0])), false
}

// Verify checks that every size has an icon of the given format in dir with
// matching dimensions
func Verify(dir string, sizes []int, format Format) []Check {
	checks := make([]Check, 0, len(sizes))
	for _, size := range sizes {
		path, ok := FindIcon(dir, size, format)
		if !ok {
			checks = append(checks, Check{Path: path, Size: size, Err: errors.New("not found")})
			continue
		}
		checks = append(checks, checkFile(path, size))
	}
	return checks
}

// VerifyFiles checks exactly the given paths, paths[i] holding the icon for sizes[i]
func VerifyFiles(paths []string, sizes []int) []Check {
	checks := make([]Check, 0, len(paths))
	for i, path := range paths {
		checks = append(checks, checkFile(path, sizes[i]))
	}
	return checks
}

func checkFile(path string, size int) Check {
	c := Check{Path: path, Size: size}

	data, err := os.ReadFile(path)
	if err != nil {
		c.Err = err
		return c
	}
	c.Bytes = int64(len(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			c.Err = fmt.Errorf("not a valid PNG: %w", err)
			return c
		}
		c.Width, c.Height = cfg.Width, cfg.Height
	case ".svg":
		c.Width, c.Height, err = svgDimensions(data)
		if err != nil {
			c.Err = fmt.Errorf("not a valid SVG: %w", err)
			return c
		}
	default:
		c.Err = fmt.Errorf("unsupported icon type %s", filepath.Ext(path))
		return c
	}

	if c.Width != size || c.Height != size {
		c.Err = fmt.Errorf("is %dx%d, want %dx%d", c.Width, c.Height, size, size)
	}
	return c
}

// svgDimensions reads width and height from the root <svg> element and checks
// that the viewBox agrees with them
func svgDimensions(data []byte) (int, int, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, fmt.Errorf("no <svg> root element: %w", err)
		}
		if el, ok := tok.(xml.StartElement); ok {
			root = el
			break
		}
	}
	if root.Name.Local != "svg" {
		return 0, 0, fmt.Errorf("root element is <%s>, want <svg>", root.Name.Local)
	}

	var width, height string
	for _, a := range root.Attr {
		switch a.Name.Local {
		case "width":
			width = a.Value
		case "height":
			height = a.Value
		}
	}
	w, err := parseLength("width", width)
	if err != nil {
		return 0, 0, err
	}
	h, err := parseLength("height", height)
	if err != nil {
		return 0, 0, err
	}

	icon, err := readSVG(bytes.NewReader(data))
	if err != nil {
		return 0, 0, err
	}
	if vw, vh := int(icon.ViewBox.W), int(icon.ViewBox.H); vw != w || vh != h {
		return 0, 0, fmt.Errorf("viewBox is %dx%d but width/height is %dx%d", vw, vh, w, h)
	}
	return w, h, nil
}

func parseLength(name, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, v)
	}
	return n, nil
}
