package main

import (
	"image"

	"exticons/icon"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tileMargin  = 24
	labelHeight = 16
	// Minimum width so labels of small icons are not clipped
	minWindowWidth = 480
)

// Preview shows each icon at native size, with a zoomed row underneath
type Preview struct {
	icons  []*ebiten.Image
	labels []string
	zoom   int

	native []image.Rectangle
	zoomed []image.Rectangle

	width  int
	height int
}

// NewPreview uploads the icons and lays out both rows
func NewPreview(imgs []image.Image, labels []string, zoom int) *Preview {
	p := &Preview{
		labels: labels,
		zoom:   zoom,
	}

	sizes := make([]int, len(imgs))
	zoomedSizes := make([]int, len(imgs))
	for i, img := range imgs {
		p.icons = append(p.icons, ebiten.NewImageFromImage(img))
		sizes[i] = img.Bounds().Dx()
		zoomedSizes[i] = sizes[i] * zoom
	}

	native, nativeSize := icon.Layout(sizes, tileMargin)
	zoomed, zoomedSize := icon.Layout(zoomedSizes, tileMargin)

	// Zoomed row sits below the native row and its labels
	offset := image.Pt(0, nativeSize.Y+labelHeight)
	for i := range zoomed {
		zoomed[i] = zoomed[i].Add(offset)
	}

	p.native = native
	p.zoomed = zoomed
	p.width = max(nativeSize.X, zoomedSize.X, minWindowWidth)
	p.height = offset.Y + zoomedSize.Y + labelHeight
	return p
}

// Update quits on Esc or Q
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders both rows over the sheet backdrop
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(icon.ColorBackground)

	for i, img := range p.icons {
		p.drawTile(screen, img, p.native[i], 1)
		p.drawTile(screen, img, p.zoomed[i], float64(p.zoom))

		// Label under the zoomed tile only; native tiles can be too narrow
		r := p.zoomed[i]
		ebitenutil.DebugPrintAt(screen, p.labels[i], r.Min.X, r.Max.Y+2)
	}
}

func (p *Preview) drawTile(screen, img *ebiten.Image, r image.Rectangle, scale float64) {
	// Tile backdrop one pixel larger than the icon so transparent corners show
	vector.DrawFilledRect(screen,
		float32(r.Min.X-1), float32(r.Min.Y-1),
		float32(r.Dx()+2), float32(r.Dy()+2),
		icon.ColorTile, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

// Layout keeps a fixed logical size; the window scales it
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}
