package batch

import (
	"errors"
	"slices"
	"testing"

	"synthvolcano/internal/volcano"
)

func smallConfig() volcano.Config {
	cfg := volcano.DefaultConfig()
	cfg.Size = 48
	cfg.Seed = 100
	return cfg
}

func TestRunOrdersByIndex(t *testing.T) {
	visited := 0
	all := Run(smallConfig(), 6, 3, func(v *volcano.Volcano, s Summary) {
		visited++
		if v == nil {
			t.Errorf("instance %d missing volcano: %v", s.Index, s.Err)
		}
	})
	if len(all) != 6 || visited != 6 {
		t.Fatalf("expected 6 summaries and visits, got %d/%d", len(all), visited)
	}
	for i, s := range all {
		if s.Index != i || s.Seed != Seed(100, i) {
			t.Fatalf("summary %d has index %d seed %d", i, s.Index, s.Seed)
		}
		if s.Err != nil {
			t.Fatalf("instance %d failed: %v", i, s.Err)
		}
		if s.RangeWidth < 1 || len(s.Timings) != 3 {
			t.Fatalf("instance %d incomplete: %+v", i, s)
		}
	}
	if Failures(all) != 0 {
		t.Fatal("expected no failures")
	}
}

func TestRunMatchesSequentialGeneration(t *testing.T) {
	cfg := smallConfig()
	parallel := map[int64][]float64{}
	Run(cfg, 4, 4, func(v *volcano.Volcano, s Summary) {
		parallel[s.Seed] = v.ProjectedReflectance().Cells()
	})
	for i := 0; i < 4; i++ {
		seq := cfg
		seq.Seed = Seed(cfg.Seed, i)
		v, err := volcano.Generate(seq)
		if err != nil {
			t.Fatalf("sequential generate failed: %v", err)
		}
		if !slices.Equal(v.ProjectedReflectance().Cells(), parallel[seq.Seed]) {
			t.Fatalf("seed %d differs between parallel and sequential runs", seq.Seed)
		}
	}
}

func TestRunReportsErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.SpeckleScale = 0
	all := Run(cfg, 3, 0, nil)
	if Failures(all) != 3 {
		t.Fatalf("expected every instance to fail, got %d", Failures(all))
	}
	if !errors.Is(all[0].Err, volcano.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", all[0].Err)
	}
	if Run(cfg, 0, 2, nil) != nil {
		t.Fatal("an empty batch should return nil")
	}
}
