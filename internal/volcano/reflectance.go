package volcano

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"synthvolcano/internal/core"
)

// minReturn is the smallest normal float64. Away-facing facets are clamped to
// it so the product with any albedo of at least 2^-52 stays positive.
const minReturn = 0x1p-1022

// SensorDirection returns the unit vector pointing from the scene towards a
// side-looking sensor at the given look angle.
func SensorDirection(angle float64) r3.Vec {
	return r3.Vec{X: -math.Sin(angle), Y: 0, Z: math.Cos(angle)}
}

// SurfaceNormal turns central-difference slopes into the normal
// (-dzdx, -dzdy, -1) scaled by 1/sqrt(dzdx²+dzdy²+1).
func SurfaceNormal(dzdx, dzdy float64) r3.Vec {
	hyp := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)
	return r3.Vec{X: -dzdx / hyp, Y: -dzdy / hyp, Z: -1 / hyp}
}

// slopes returns the central differences of g at an interior cell.
func slopes(g *core.Grid, x, y int) (dzdx, dzdy float64) {
	dzdx = (g.At(x+1, y) - g.At(x-1, y)) / 2
	dzdy = (g.At(x, y+1) - g.At(x, y-1)) / 2
	return dzdx, dzdy
}

// Reflect derives per-cell surface normals and the sensor-relative
// reflectance of dem. Albedo holds coherent noise of the same size; its
// magnitude modulates the reflectance. Border cells, where central
// differences are undefined, keep a zero normal and zero reflectance.
func Reflect(dem *core.Grid, sensor r3.Vec, albedo *core.Grid) (normals, reflectance *core.Grid) {
	normals = core.NewGrid(dem.W, dem.H, 3)
	reflectance = core.NewGrid(dem.W, dem.H, 1)

	for y := 1; y < dem.H-1; y++ {
		for x := 1; x < dem.W-1; x++ {
			n := SurfaceNormal(slopes(dem, x, y))
			normals.SetVec(x, y, n)

			// Facets turned away from the sensor keep a tiny positive
			// return rather than an exact zero.
			cos := r3.Dot(sensor, n)
			if cos < 0 {
				cos = minReturn
			}
			reflectance.Set(x, y, cos*math.Abs(albedo.At(x, y)))
		}
	}

	reflectance.ShiftNonNegative()
	return normals, reflectance
}
