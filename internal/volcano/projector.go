package volcano

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"synthvolcano/internal/core"
)

// Unmapped marks range-projected cells no source cell landed on.
const Unmapped = -1.0

// inpaintWeights approximates a 5×5 Gaussian.
var inpaintWeights = [5][5]float64{
	{1, 4, 7, 4, 1},
	{4, 16, 26, 16, 4},
	{7, 26, 41, 26, 7},
	{4, 16, 26, 16, 4},
	{1, 4, 7, 4, 1},
}

// RangeScores projects every cell (x, y, elevation) onto the sensor direction
// and lifts the scores so the smallest is not negative.
func RangeScores(dem *core.Grid, sensor r3.Vec) *core.Grid {
	scores := core.NewGrid(dem.W, dem.H, 1)
	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			p := r3.Vec{X: float64(x), Y: float64(y), Z: dem.At(x, y)}
			scores.Set(x, y, r3.Dot(p, sensor))
		}
	}
	scores.ShiftNonNegative()
	return scores
}

// Project resamples dem and reflectance into slant-range coordinates: a source
// cell keeps its row and moves to the column given by its truncated range
// score. Later cells in raster order overwrite earlier ones; columns nothing
// maps to hold Unmapped.
func Project(dem, reflectance *core.Grid, sensor r3.Vec) (demRange, reflRange *core.Grid) {
	scores := RangeScores(dem, sensor)
	width := int(scores.Max()) + 1

	demRange = core.NewFilledGrid(width, dem.H, 1, Unmapped)
	reflRange = core.NewFilledGrid(width, dem.H, 1, Unmapped)
	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			col := int(scores.At(x, y))
			demRange.Set(col, y, dem.At(x, y))
			reflRange.Set(col, y, reflectance.At(x, y))
		}
	}
	return demRange, reflRange
}

// Inpaint fills Unmapped cells with the Gaussian-weighted mean of their mapped
// neighbours in a 5×5 window. Cells are visited in raster order and a filled
// cell counts as mapped for the cells after it. A cell without any mapped or
// finite neighbour becomes 0.
func Inpaint(g *core.Grid) *core.Grid {
	out := g.Clone()
	half := len(inpaintWeights) / 2
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			if out.At(x, y) != Unmapped {
				continue
			}
			var sum, weight float64
			for ky, row := range inpaintWeights {
				for kx, w := range row {
					nx, ny := x-half+kx, y-half+ky
					if !out.InBounds(nx, ny) {
						continue
					}
					v := out.At(nx, ny)
					if v == Unmapped || math.IsNaN(v) {
						continue
					}
					sum += v * w
					weight += w
				}
			}
			if weight == 0 {
				out.Set(x, y, 0)
				continue
			}
			out.Set(x, y, sum/weight)
		}
	}
	return out
}

// Speckle adds an independent Gamma(shape, scale) draw to every cell.
func Speckle(g *core.Grid, shape, scale float64, src rand.Source) *core.Grid {
	out := g.Clone()
	gamma := distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: src}
	cells := out.Cells()
	for i := range cells {
		cells[i] += gamma.Rand()
	}
	return out
}
