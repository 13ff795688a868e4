package render

import (
	"image"
	"image/color"
	"math"

	"synthvolcano/internal/core"
)

// Mode selects how a float grid is turned into colours.
type Mode int

const (
	// ModeGray stretches a single channel between its minimum and maximum.
	ModeGray Mode = iota
	// ModeTerrain maps a single channel onto a hypsometric colour ramp.
	ModeTerrain
	// ModeVector maps three channels in [-1, 1] onto RGB.
	ModeVector
)

// Image converts g into an RGBA image. Grids with three channels are always
// drawn as vectors.
func Image(g *core.Grid, mode Mode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	if g.C == 3 {
		fillVectorRGBA(img.Pix, g.Cells())
		return img
	}
	lo, hi := channelRange(g)
	switch mode {
	case ModeTerrain:
		fillRampRGBA(img.Pix, g.Cells(), g.C, lo, hi, terrainStops)
	default:
		fillGrayRGBA(img.Pix, g.Cells(), g.C, lo, hi)
	}
	return img
}

// channelRange returns the finite extent of channel 0.
func channelRange(g *core.Grid) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	cells := g.Cells()
	for i := 0; i < len(cells); i += g.C {
		v := cells[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo || math.IsNaN(v) {
		return 0
	}
	return clamp01((v - lo) / (hi - lo))
}

// fillGrayRGBA writes channel 0 of cells as opaque gray levels into buf.
func fillGrayRGBA(buf []byte, cells []float64, stride int, lo, hi float64) {
	for i := 0; i*stride < len(cells); i++ {
		level := uint8(math.Round(255 * normalize(cells[i*stride], lo, hi)))
		base := i * 4
		buf[base+0] = level
		buf[base+1] = level
		buf[base+2] = level
		buf[base+3] = 255
	}
}

// fillVectorRGBA maps three-channel cells from [-1, 1] onto [0, 255].
func fillVectorRGBA(buf []byte, cells []float64) {
	for i := 0; i*3 < len(cells); i++ {
		base := i * 4
		for c := 0; c < 3; c++ {
			buf[base+c] = uint8(math.Round(255 * clamp01((cells[i*3+c]+1)/2)))
		}
		buf[base+3] = 255
	}
}

type colorStop struct {
	t   float64
	col color.RGBA
}

var terrainStops = []colorStop{
	{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 255}},
	{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 255}},
	{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 255}},
	{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 255}},
	{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 255}},
}

// fillRampRGBA colours channel 0 of cells by interpolating between stops.
// An empty ramp clears the buffer to transparent black.
func fillRampRGBA(buf []byte, cells []float64, stride int, lo, hi float64, stops []colorStop) {
	for i := 0; i*stride < len(cells); i++ {
		base := i * 4
		if len(stops) == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		col := rampColor(stops, normalize(cells[i*stride], lo, hi))
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func rampColor(stops []colorStop, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
