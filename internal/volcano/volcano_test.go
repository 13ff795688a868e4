package volcano

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"synthvolcano/internal/core"
	pcore "synthvolcano/pkg/core"
)

func smallConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Size = 96
	cfg.Seed = seed
	return cfg
}

func grids(v *Volcano) map[string]*core.Grid {
	return map[string]*core.Grid{
		"dem":        v.DEM(),
		"noise":      v.ElevationNoise(),
		"normals":    v.Normals(),
		"reflect":    v.Reflectance(),
		"dem range":  v.ProjectedDEM(),
		"refl range": v.ProjectedReflectance(),
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(smallConfig(42))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, err := Generate(smallConfig(42))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if a.Parameters() != b.Parameters() {
		t.Fatal("parameters differ for the same seed")
	}
	ga, gb := grids(a), grids(b)
	for name, g := range ga {
		if !slices.Equal(g.Cells(), gb[name].Cells()) {
			t.Fatalf("%s differs for the same seed", name)
		}
	}

	c, err := Generate(smallConfig(43))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if slices.Equal(a.ProjectedReflectance().Cells(), c.ProjectedReflectance().Cells()) {
		t.Fatal("different seeds should produce different rasters")
	}
}

func TestGenerateShapes(t *testing.T) {
	v, err := Generate(smallConfig(5))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	dem := v.DEM()
	if dem.Size() != (core.Size{W: 96, H: 96}) || dem.C != 1 {
		t.Fatalf("unexpected DEM shape %dx%dx%d", dem.W, dem.H, dem.C)
	}
	if v.Normals().C != 3 {
		t.Fatal("normals should have three channels")
	}
	demRange := v.ProjectedDEM()
	if demRange.H != 96 || demRange.W < 1 {
		t.Fatalf("unexpected projected shape %dx%d", demRange.W, demRange.H)
	}
	if demRange.W != v.ProjectedReflectance().W {
		t.Fatal("projected rasters should share a width")
	}
	for i, val := range demRange.Cells() {
		if val == Unmapped {
			t.Fatalf("projected cell %d left unmapped after inpainting", i)
		}
	}
	if v.Reflectance().Min() < 0 || dem.Min() < 0 {
		t.Fatal("DEM and reflectance must be non-negative")
	}

	ds := v.Dataset()
	if ds.Gradients.C != 3 || ds.Gradients.W != demRange.W {
		t.Fatal("dataset gradients should follow the projected DEM")
	}

	timings := v.Timings()
	want := []string{StageElevation, StageReflectance, StageProjection}
	if len(timings) != len(want) {
		t.Fatalf("expected %d stage timings, got %d", len(want), len(timings))
	}
	for i, st := range timings {
		if st.Stage != want[i] {
			t.Fatalf("timing %d is %q, expected %q", i, st.Stage, want[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	v, err := Generate(smallConfig(9))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	dem := v.DEM()
	before := dem.At(10, 10)
	dem.Set(10, 10, before+100)
	if v.DEM().At(10, 10) != before {
		t.Fatal("mutating a returned grid changed the volcano")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = -1
	if _, err := Generate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := New(scenarioParameters(), cfg, pcore.NewRNG(1)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig from New, got %v", err)
	}
}

func TestNewScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 301
	p := scenarioParameters()
	v, err := New(p, cfg, pcore.NewRNG(cfg.Seed))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	dem := v.DEM()
	base, crater := v.Ellipse(Base), v.Ellipse(Crater)
	if base.LongAxis() != 120 || crater.ShortAxis() != 18 {
		t.Fatalf("unexpected ellipses %v / %v", base, crater)
	}
	if got := v.ToRaster(p.BaseCenter); got != image.Pt(150, 150) {
		t.Fatalf("base centre should land mid-raster, got %v", got)
	}

	stats := v.Stats()
	craterMax := math.Inf(-1)
	best, bestAt := math.Inf(-1), image.Point{}
	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			q := image.Pt(x, y).Add(p.BaseCenter).Sub(image.Pt(150, 150))
			h := dem.At(x, y)
			if h > best {
				best, bestAt = h, q
			}
			if crater.Inside(q) {
				craterMax = math.Max(craterMax, h)
			}
		}
	}
	if craterMax >= stats.RimMin+stats.Offset {
		t.Fatalf("crater maximum %f should stay below the rim %f", craterMax, stats.RimMin+stats.Offset)
	}
	if !base.Inside(bestAt) || crater.Inside(bestAt) {
		t.Fatalf("highest point %v should lie on the volcano ring", bestAt)
	}
	if v.Snapshot().Groups[0].Name != "Run" {
		t.Fatal("snapshot should start with the run group")
	}
}
