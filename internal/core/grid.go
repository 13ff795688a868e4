package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Grid stores a 2D raster of float64 samples in row-major order. Each cell
// holds C consecutive channels.
type Grid struct {
	W, H, C int
	data    []float64
}

// NewGrid allocates a zeroed grid with the given dimensions and channel count.
func NewGrid(w, h, c int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if c <= 0 {
		c = 1
	}
	return &Grid{W: w, H: h, C: c, data: make([]float64, w*h*c)}
}

// NewFilledGrid allocates a grid with every sample set to v.
func NewFilledGrid(w, h, c int, v float64) *Grid {
	g := NewGrid(w, h, c)
	g.Fill(v)
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index of channel 0 at (x, y).
func (g *Grid) Index(x, y int) int { return (y*g.W + x) * g.C }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns channel 0 at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[g.Index(x, y)] }

// Set writes channel 0 at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[g.Index(x, y)] = v }

// AtC returns channel c at (x, y).
func (g *Grid) AtC(x, y, c int) float64 { return g.data[g.Index(x, y)+c] }

// SetC writes channel c at (x, y).
func (g *Grid) SetC(x, y, c int, v float64) { g.data[g.Index(x, y)+c] = v }

// Vec returns the first three channels at (x, y) as a vector.
func (g *Grid) Vec(x, y int) r3.Vec {
	i := g.Index(x, y)
	return r3.Vec{X: g.data[i], Y: g.data[i+1], Z: g.data[i+2]}
}

// SetVec writes v into the first three channels at (x, y).
func (g *Grid) SetVec(x, y int, v r3.Vec) {
	i := g.Index(x, y)
	g.data[i], g.data[i+1], g.data[i+2] = v.X, v.Y, v.Z
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, C: g.C, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Min returns the smallest sample across all channels.
func (g *Grid) Min() float64 { return floats.Min(g.data) }

// Max returns the largest sample across all channels.
func (g *Grid) Max() float64 { return floats.Max(g.data) }

// ShiftNonNegative lifts the whole grid by |min| when its minimum is negative
// and returns the applied offset.
func (g *Grid) ShiftNonNegative() float64 {
	min := g.Min()
	if min >= 0 {
		return 0
	}
	offset := math.Abs(min)
	floats.AddConst(offset, g.data)
	return offset
}

// Normalized returns a copy linearly rescaled so the minimum maps to lo and
// the maximum to hi. A constant grid maps to lo everywhere.
func (g *Grid) Normalized(lo, hi float64) *Grid {
	out := g.Clone()
	min, max := g.Min(), g.Max()
	span := max - min
	for i, v := range out.data {
		if span == 0 {
			out.data[i] = lo
			continue
		}
		out.data[i] = lo + (v-min)/span*(hi-lo)
	}
	return out
}
