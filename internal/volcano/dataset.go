package volcano

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"synthvolcano/internal/core"
)

// Dataset is one training sample derived from a finished run.
type Dataset struct {
	// Gradients holds the normalized slope field of the range-projected DEM
	// as (-dzdx/hyp, -dzdy/hyp, 0).
	Gradients *core.Grid
	// Reflectance is the range-projected reflectance rescaled to [0, 1].
	Reflectance *core.Grid
}

// Gradients computes the normalized horizontal slope field of g. Border
// cells stay zero.
func Gradients(g *core.Grid) *core.Grid {
	out := core.NewGrid(g.W, g.H, 3)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			dzdx, dzdy := slopes(g, x, y)
			hyp := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)
			out.SetVec(x, y, r3.Vec{X: -dzdx / hyp, Y: -dzdy / hyp})
		}
	}
	return out
}

// NewDataset derives the training pair from range-projected rasters.
func NewDataset(demRange, reflRange *core.Grid) Dataset {
	return Dataset{
		Gradients:   Gradients(demRange),
		Reflectance: reflRange.Normalized(0, 1),
	}
}
