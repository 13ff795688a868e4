package volcano

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrSamplerExhausted is returned when no plausible draw was found within the
// attempt budget. Under the stock distributions this is practically
// unreachable and points at a broken configuration.
var ErrSamplerExhausted = errors.New("volcano: parameter sampler exhausted")

const (
	// metresPerPixel approximates the ground sample distance of the sensor.
	metresPerPixel = 4.0
	// sampleCeiling rejects draws from the far tails of the distributions.
	sampleCeiling = 9000
)

// Distributions observed on real volcanoes. Ranges in comments are the
// intended support of each Gaussian.
var (
	heightDist             = normal(4400, 580)   // [2000, 6800] m
	craterMinHeightDist    = normal(0.85, 0.02)  // [0.77, 0.93] of height
	craterFallDist         = normal(0.135, 0.03) // [0.03, 0.24] of crater depth
	heightToDiameterDist   = normal(0.21, 0.037) // [0.051, 0.25]
	baseEccentricityDist   = normal(0.85, 0.15)
	baseToCraterDist       = normal(0.11, 0.08)
	craterEccentricityDist = normal(0.85, 0.15)
	craterShiftDist        = normal(0, 0.01)
)

func normal(mu, sigma float64) distuv.Normal {
	return distuv.Normal{Mu: mu, Sigma: sigma}
}

// draft holds one raw draw before it is truncated to pixels.
type draft struct {
	height               float64
	craterMinHeightRatio float64
	craterMinHeight      float64
	craterFallRatio      float64
	craterFall           float64

	baseLong, baseShort     float64
	craterLong, craterShort float64
	craterX, craterY        float64
}

// Sample draws a plausible parameter set, redrawing everything whenever any
// quantity falls outside [0, 9000]. It gives up after maxAttempts draws.
func Sample(src rand.Source, maxAttempts int) (Parameters, error) {
	return sample(src, maxAttempts, drawDraft)
}

func sample(src rand.Source, maxAttempts int, draw func(rand.Source) draft) (Parameters, error) {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		d := draw(src)
		if d.plausible() {
			return d.parameters(), nil
		}
	}
	return Parameters{}, fmt.Errorf("%w after %d attempts", ErrSamplerExhausted, maxAttempts)
}

func drawDraft(src rand.Source) draft {
	draw := func(d distuv.Normal) float64 {
		d.Src = src
		return d.Rand()
	}

	var d draft
	d.height = draw(heightDist)

	d.craterMinHeightRatio = draw(craterMinHeightDist)
	d.craterMinHeight = d.height * d.craterMinHeightRatio

	d.craterFallRatio = draw(craterFallDist)
	d.craterFall = (d.height - d.craterMinHeight) * d.craterFallRatio

	baseLongMetres := (d.height / draw(heightToDiameterDist)) / (2 * math.Pi)
	d.baseLong = math.Trunc(baseLongMetres / metresPerPixel)
	d.baseShort = math.Trunc(baseLongMetres * draw(baseEccentricityDist) / metresPerPixel)

	craterLongMetres := baseLongMetres * draw(baseToCraterDist)
	d.craterLong = math.Trunc(craterLongMetres / metresPerPixel)
	d.craterShort = math.Trunc(craterLongMetres * draw(craterEccentricityDist) / metresPerPixel)

	// The base centre sits at (baseLong, baseShort); the crater is nudged by a
	// small fraction of those coordinates.
	xShift := draw(craterShiftDist)
	yShift := draw(craterShiftDist)
	d.craterX = math.Trunc(d.baseLong*xShift + d.baseLong)
	d.craterY = math.Trunc(d.baseShort*yShift + d.baseShort)
	return d
}

func (d draft) plausible() bool {
	if d.craterMinHeightRatio > sampleCeiling || d.craterFall > sampleCeiling {
		return false
	}
	for _, v := range []float64{d.baseLong, d.baseShort, d.craterLong, d.craterShort, d.craterX, d.craterY} {
		if math.IsNaN(v) || v < 0 || v > sampleCeiling {
			return false
		}
	}
	return !math.IsNaN(d.height) && !math.IsNaN(d.craterFall)
}

func (d draft) parameters() Parameters {
	return Parameters{
		Height:               d.height,
		CraterMaxHeight:      d.height - d.craterFall,
		CraterMinHeight:      d.craterMinHeight,
		CraterMinHeightRatio: d.craterMinHeightRatio,
		CraterFall:           d.craterFall,
		CraterFallRatio:      d.craterFallRatio,
		BaseLongAxis:         int(d.baseLong),
		BaseShortAxis:        int(d.baseShort),
		CraterLongAxis:       int(d.craterLong),
		CraterShortAxis:      int(d.craterShort),
		BaseCenter:           image.Pt(int(d.baseLong), int(d.baseShort)),
		CraterCenter:         image.Pt(int(d.craterX), int(d.craterY)),
	}
}
