package volcano

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(rand.NewSource(7), 5).Sample(32, 24)
	b := NewNoise(rand.NewSource(7), 5).Sample(32, 24)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same source should produce the same noise")
	}
	c := NewNoise(rand.NewSource(8), 5).Sample(32, 24)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different sources should produce different noise")
	}
}

func TestNoiseBounded(t *testing.T) {
	g := NewNoise(rand.NewSource(11), 5).Sample(64, 64)
	for i, v := range g.Cells() {
		if math.IsNaN(v) || math.Abs(v) > 1.75 {
			t.Fatalf("cell %d = %f outside the octave bound", i, v)
		}
	}
	if g.Max() == g.Min() {
		t.Fatal("noise should not be constant")
	}
}
