package volcano

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"synthvolcano/internal/core"
)

func plane(w, h int, fn func(x, y int) float64) *core.Grid {
	g := core.NewGrid(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, fn(x, y))
		}
	}
	return g
}

func TestSensorDirection(t *testing.T) {
	s := SensorDirection(1.39626)
	if math.Abs(r3.Norm(s)-1) > 1e-12 {
		t.Fatalf("sensor direction should be unit length, got %f", r3.Norm(s))
	}
	if s.Y != 0 || s.X >= 0 || s.Z <= 0 {
		t.Fatalf("unexpected sensor direction %v", s)
	}
}

func TestSurfaceNormalRecoversSlopes(t *testing.T) {
	n := SurfaceNormal(3, -2)
	if math.Abs(r3.Norm(n)-1) > 1e-12 {
		t.Fatalf("normal should be unit length, got %f", r3.Norm(n))
	}
	if math.Abs(n.X/n.Z-3) > 1e-12 || math.Abs(n.Y/n.Z+2) > 1e-12 {
		t.Fatalf("normal %v does not encode slopes (3, -2)", n)
	}
}

func TestReflectTiltedPlane(t *testing.T) {
	dem := plane(6, 5, func(x, y int) float64 { return 3*float64(x) + 2*float64(y) })
	albedo := core.NewFilledGrid(6, 5, 1, -0.5)
	sensor := SensorDirection(1.39626)

	normals, refl := Reflect(dem, sensor, albedo)
	if normals.C != 3 || refl.C != 1 {
		t.Fatalf("unexpected channel counts %d/%d", normals.C, refl.C)
	}
	want := r3.Dot(sensor, SurfaceNormal(3, 2)) * 0.5
	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			border := x == 0 || y == 0 || x == dem.W-1 || y == dem.H-1
			n := normals.Vec(x, y)
			if border {
				if n != (r3.Vec{}) || refl.At(x, y) != 0 {
					t.Fatalf("border cell (%d,%d) should stay zero", x, y)
				}
				continue
			}
			if math.Abs(n.X/n.Z-3) > 1e-12 || math.Abs(n.Y/n.Z-2) > 1e-12 {
				t.Fatalf("normal at (%d,%d) = %v does not match the plane", x, y, n)
			}
			if math.Abs(refl.At(x, y)-want) > 1e-12 {
				t.Fatalf("reflectance at (%d,%d) = %f, expected %f", x, y, refl.At(x, y), want)
			}
		}
	}
}

func TestReflectClampsAwayFacingFacets(t *testing.T) {
	dem := plane(4, 4, func(x, y int) float64 { return -10 * float64(x) })
	for _, a := range []float64{1, 0.3, -0.05, 1e-6} {
		albedo := core.NewFilledGrid(4, 4, 1, a)
		_, refl := Reflect(dem, SensorDirection(1.39626), albedo)
		for y := 1; y < 3; y++ {
			for x := 1; x < 3; x++ {
				v := refl.At(x, y)
				if v <= 0 || v > 1e-300 {
					t.Fatalf("albedo %g: away-facing cell (%d,%d) should keep a tiny positive return, got %g", a, x, y, v)
				}
			}
		}
		if refl.Min() < 0 {
			t.Fatal("reflectance must be non-negative")
		}
	}
}
