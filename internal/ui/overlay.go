//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type legendProvider interface {
	LegendLines() []string
}

// Overlay draws the legend on top of the raster view and tracks the
// display toggles.
type Overlay struct {
	subject      any
	showLegend   bool
	showOutlines bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(subject any) *Overlay {
	o := &Overlay{subject: subject, showLegend: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the legend (H) and the ellipse outlines (O).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showLegend = !o.showLegend
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showOutlines = !o.showOutlines
	}
}

// ShowOutlines reports whether the ellipse outlines are switched on.
func (o *Overlay) ShowOutlines() bool { return o.showOutlines }

// Draw renders the legend onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showLegend {
		return
	}
	provider, ok := o.subject.(legendProvider)
	if !ok {
		return
	}
	lines := provider.LegendLines()
	if len(lines) == 0 {
		return
	}

	const (
		margin  = 8
		padding = 6
		lineGap = 15
	)
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineGap + padding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*padding), float64(height))
	op.GeoM.Translate(margin, margin)
	op.ColorScale.Scale(0, 0, 0, 0.6)
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		y := margin + padding + (i+1)*lineGap - 4
		text.Draw(screen, line, face, margin+padding, y, color.RGBA{R: 230, G: 230, B: 235, A: 255})
	}
}
