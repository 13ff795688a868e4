package volcano

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"synthvolcano/internal/core"
)

// Octave layout of the coherent noise: each octave doubles the frequency and
// halves the amplitude. The depth coordinate stays fixed across octaves.
const (
	noiseOctaves = 3
	noiseDepth   = 0.5
)

// Noise is a seeded multi-octave coherent noise field sampled on a raster.
type Noise struct {
	p     *perlin.Perlin
	scale float64
}

// NewNoise builds a noise field from its own source. Scale multiplies the
// normalized raster coordinate before sampling.
func NewNoise(src rand.Source, scale float64) *Noise {
	return &Noise{
		p:     perlin.NewPerlinRandSource(2, 2, 1, src),
		scale: scale,
	}
}

// At samples the field at raster cell (x, y) of a w×h raster.
func (n *Noise) At(x, y, w, h int) float64 {
	cols, rows := float64(w), float64(h)
	if cols == 0 {
		cols = 1
	}
	if rows == 0 {
		rows = 1
	}
	u := n.scale * float64(x) / cols
	v := n.scale * float64(y) / rows
	var sum float64
	freq, amp := 1.0, 1.0
	for i := 0; i < noiseOctaves; i++ {
		sum += amp * n.p.Noise3D(freq*u, freq*v, noiseDepth)
		freq *= 2
		amp /= 2
	}
	return sum
}

// Sample evaluates the field over a whole w×h raster.
func (n *Noise) Sample(w, h int) *core.Grid {
	g := core.NewGrid(w, h, 1)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, n.At(x, y, w, h))
		}
	}
	return g
}
