package icon

import "image/color"

// Default generation settings
const (
	DefaultOutputDir   = "icons"
	DefaultGlyph       = "M"
	DefaultFontPath    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	DefaultTopColor    = "#667eea"
	DefaultBottomColor = "#764ba2"
	DefaultTextColor   = "#ffffff"
	DefaultFontDPI     = 72
	defaultSheetMargin = 16
	gradientID         = "grad"
	svgFontFamily      = "Arial, sans-serif"
)

// DefaultSizes are the toolbar icon sizes a browser extension manifest asks for.
var DefaultSizes = []int{16, 48, 128}

// Backdrop colors shared by the contact sheet and the preview window
var (
	ColorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}
	ColorTile       = color.NRGBA{R: 10, G: 16, B: 32, A: 255}
)
