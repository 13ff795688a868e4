package volcano

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"synthvolcano/internal/core"
)

func scenarioParameters() Parameters {
	return Parameters{
		Height:               4400,
		CraterMinHeightRatio: 0.85,
		CraterFallRatio:      0.135,
		BaseLongAxis:         120,
		BaseShortAxis:        100,
		CraterLongAxis:       20,
		CraterShortAxis:      18,
		BaseCenter:           image.Pt(120, 100),
		CraterCenter:         image.Pt(120, 100),
	}
}

func TestBuildElevationShape(t *testing.T) {
	cfg := DefaultConfig()
	p := scenarioParameters()
	noise := NewNoise(rand.NewSource(1), cfg.NoiseScale).Sample(cfg.Size, cfg.Size)
	dem, stats := BuildElevation(p, cfg, noise)

	if dem.W != cfg.Size || dem.H != cfg.Size || dem.C != 1 {
		t.Fatalf("unexpected DEM shape %dx%dx%d", dem.W, dem.H, dem.C)
	}
	if min := dem.Min(); min < 0 {
		t.Fatalf("minimum elevation %f is negative", min)
	}
	if math.IsInf(stats.RimMin, 1) {
		t.Fatal("expected a rim around the crater")
	}
	if stats.Peak != math.Min(stats.BaseMax, stats.RimMin) {
		t.Fatalf("peak %f should be min(%f, %f)", stats.Peak, stats.BaseMax, stats.RimMin)
	}

	m := newElevationModel(p, cfg)
	craterMax, rimMin := math.Inf(-1), math.Inf(1)
	best, bestAt := math.Inf(-1), image.Point{}
	craterCells := 0
	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			h := dem.At(x, y)
			q := m.toEllipse(x, y)
			if h > best {
				best, bestAt = h, q
			}
			if m.crater.Inside(q) {
				craterCells++
				if h < stats.CraterMinHeight {
					t.Fatalf("crater cell (%d,%d) at %f is below the crater floor %f", x, y, h, stats.CraterMinHeight)
				}
				craterMax = math.Max(craterMax, h)
				continue
			}
			if m.touchesCrater(q) {
				rimMin = math.Min(rimMin, h)
			}
		}
	}
	if craterCells == 0 {
		t.Fatal("expected crater cells")
	}
	if craterMax >= rimMin {
		t.Fatalf("crater maximum %f should stay below the rim minimum %f", craterMax, rimMin)
	}
	if !m.base.Inside(bestAt) || m.crater.Inside(bestAt) {
		t.Fatalf("highest cell %v should lie between the base and crater boundaries", bestAt)
	}
}

func TestBuildElevationCentersBase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 101
	p := scenarioParameters()
	p.BaseLongAxis, p.BaseShortAxis = 40, 30
	p.BaseCenter = image.Pt(40, 30)
	p.CraterCenter = image.Pt(40, 30)
	p.CraterLongAxis, p.CraterShortAxis = 6, 5

	m := newElevationModel(p, cfg)
	if got := m.toEllipse(50, 50); got != p.BaseCenter {
		t.Fatalf("raster centre should map to the base centre, got %v", got)
	}
}

func TestBuildElevationWithoutCrater(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 101
	p := scenarioParameters()
	p.BaseLongAxis, p.BaseShortAxis = 40, 30
	p.BaseCenter = image.Pt(40, 30)
	p.CraterLongAxis, p.CraterShortAxis = 0, 0
	p.CraterCenter = image.Pt(40, 30)

	noise := core.NewGrid(cfg.Size, cfg.Size, 1)
	dem, stats := BuildElevation(p, cfg, noise)
	if !math.IsInf(stats.RimMin, 1) {
		t.Fatalf("a degenerate crater has no rim, got %f", stats.RimMin)
	}
	if stats.Peak != stats.BaseMax {
		t.Fatalf("peak %f should equal the base maximum %f", stats.Peak, stats.BaseMax)
	}
	if dem.Min() < 0 {
		t.Fatal("elevation must be lifted to be non-negative")
	}
	if dem.Max() <= 0 {
		t.Fatal("expected a raised base")
	}
}
