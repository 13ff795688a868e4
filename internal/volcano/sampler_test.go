package volcano

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	pcore "synthvolcano/pkg/core"
)

func TestSampleDeterministic(t *testing.T) {
	a, err := Sample(pcore.NewRNG(99).Source(), 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	b, err := Sample(pcore.NewRNG(99).Source(), 100)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced different parameters:\n%v\nvs\n%v", a, b)
	}
	c, _ := Sample(pcore.NewRNG(100).Source(), 100)
	if a == c {
		t.Fatal("different seeds should produce different parameters")
	}
}

func TestSampleInvariants(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		p, err := Sample(pcore.NewRNG(seed).Source(), 1000)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, v := range []int{p.BaseLongAxis, p.BaseShortAxis, p.CraterLongAxis, p.CraterShortAxis, p.CraterCenter.X, p.CraterCenter.Y} {
			if v < 0 || v > sampleCeiling {
				t.Fatalf("seed %d: value %d outside [0, %d]\n%v", seed, v, sampleCeiling, p)
			}
		}
		if p.BaseCenter.X != p.BaseLongAxis || p.BaseCenter.Y != p.BaseShortAxis {
			t.Fatalf("seed %d: base center %v should equal the base axes", seed, p.BaseCenter)
		}
		if math.Abs(p.CraterMinHeight-p.Height*p.CraterMinHeightRatio) > 1e-9 {
			t.Fatalf("seed %d: crater min height %f inconsistent with ratio", seed, p.CraterMinHeight)
		}
		wantFall := (p.Height - p.CraterMinHeight) * p.CraterFallRatio
		if math.Abs(p.CraterFall-wantFall) > 1e-9 {
			t.Fatalf("seed %d: crater fall %f, expected %f", seed, p.CraterFall, wantFall)
		}
		if math.Abs(p.CraterMaxHeight-(p.Height-p.CraterFall)) > 1e-9 {
			t.Fatalf("seed %d: crater max height %f inconsistent", seed, p.CraterMaxHeight)
		}
	}
}

func TestSampleRetriesImplausibleDraws(t *testing.T) {
	calls := 0
	draw := func(rand.Source) draft {
		calls++
		if calls < 3 {
			return draft{baseLong: -1}
		}
		return draft{height: 100, baseLong: 10, baseShort: 8, craterLong: 2, craterShort: 2, craterX: 10, craterY: 8}
	}
	p, err := sample(nil, 10, draw)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 draws, got %d", calls)
	}
	if p.BaseLongAxis != 10 || p.CraterCenter.X != 10 {
		t.Fatalf("unexpected parameters %v", p)
	}
}

func TestSampleExhausted(t *testing.T) {
	calls := 0
	draw := func(rand.Source) draft {
		calls++
		return draft{baseLong: sampleCeiling + 1}
	}
	_, err := sample(nil, 7, draw)
	if !errors.Is(err, ErrSamplerExhausted) {
		t.Fatalf("expected ErrSamplerExhausted, got %v", err)
	}
	if calls != 7 {
		t.Fatalf("expected 7 attempts, got %d", calls)
	}
}

func TestDraftPlausibility(t *testing.T) {
	ok := draft{height: 4400, craterMinHeightRatio: 0.85, craterFall: 90, baseLong: 800, baseShort: 700, craterLong: 90, craterShort: 80, craterX: 805, craterY: 702}
	if !ok.plausible() {
		t.Fatal("typical draft rejected")
	}
	cases := map[string]func(*draft){
		"negative crater axis": func(d *draft) { d.craterLong = -3 },
		"huge base axis":       func(d *draft) { d.baseShort = 9001 },
		"huge crater fall":     func(d *draft) { d.craterFall = 9500 },
		"huge min ratio":       func(d *draft) { d.craterMinHeightRatio = 1e5 },
		"negative center":      func(d *draft) { d.craterY = -1 },
		"nan axis":             func(d *draft) { d.baseLong = math.NaN() },
	}
	for name, mutate := range cases {
		d := ok
		mutate(&d)
		if d.plausible() {
			t.Fatalf("%s: draft should be rejected", name)
		}
	}
}
