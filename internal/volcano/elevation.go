package volcano

import (
	"image"
	"math"

	"synthvolcano/internal/core"
	"synthvolcano/internal/geom"
)

// ElevationStats records the heights the crater was carved from.
type ElevationStats struct {
	// BaseMax is the highest cell between the base and crater boundaries.
	BaseMax float64
	// RimMin is the lowest cell touching the crater, or +Inf without a rim.
	RimMin float64
	// Peak is the smaller of BaseMax and RimMin.
	Peak            float64
	CraterMinHeight float64
	CraterFall      float64
	// Offset is the lift applied to make every elevation non-negative.
	Offset float64
}

var neighbours8 = [8]image.Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

type elevationModel struct {
	p             Parameters
	base, crater  geom.Ellipse
	baseProfile   geom.Profile
	craterProfile geom.Profile
	flankProfile  geom.Profile
	power, detail float64
	translate     image.Point
}

func newElevationModel(p Parameters, cfg Config) elevationModel {
	baseProfile, _ := geom.Lookup(cfg.BaseProfile)
	craterProfile, _ := geom.Lookup(cfg.CraterProfile)
	flankProfile, _ := geom.Lookup(cfg.FlankProfile)
	half := cfg.Size / 2
	return elevationModel{
		p:             p,
		base:          geom.NewEllipse(p.BaseCenter, p.BaseLongAxis, p.BaseShortAxis),
		crater:        geom.NewEllipse(p.CraterCenter, p.CraterLongAxis, p.CraterShortAxis),
		baseProfile:   baseProfile,
		craterProfile: craterProfile,
		flankProfile:  flankProfile,
		power:         cfg.CraterPower,
		detail:        cfg.DetailAmplitude,
		translate:     p.BaseCenter.Sub(image.Pt(half, half)),
	}
}

// toEllipse maps a raster cell into the frame the ellipses live in, placing
// the base centre in the middle of the raster.
func (m elevationModel) toEllipse(x, y int) image.Point {
	return image.Pt(x, y).Add(m.translate)
}

func (m elevationModel) touchesCrater(q image.Point) bool {
	for _, d := range neighbours8 {
		if m.crater.Inside(q.Add(d)) {
			return true
		}
	}
	return false
}

// BuildElevation synthesizes the height field for p on a cfg.Size square
// raster. Noise must be a raster of the same size holding the coherent detail
// noise; it is only read.
//
// The first pass shapes the ring between base and crater boundaries and finds
// the effective peak. The second pass carves the crater bowl below that peak
// and tapers the flanks outside the base. Finally the whole field is lifted
// so no elevation is negative.
func BuildElevation(p Parameters, cfg Config, noise *core.Grid) (*core.Grid, ElevationStats) {
	m := newElevationModel(p, cfg)
	dem := core.NewGrid(cfg.Size, cfg.Size, 1)
	stats := ElevationStats{RimMin: math.Inf(1)}

	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			q := m.toEllipse(x, y)
			if !m.base.Inside(q) || m.crater.Inside(q) {
				continue
			}
			ratio := m.baseProfile(m.base, q, m.power)
			h := p.Height*ratio + noise.At(x, y)*m.detail
			dem.Set(x, y, h)
			if h > stats.BaseMax {
				stats.BaseMax = h
			}
			if h < stats.RimMin && m.touchesCrater(q) {
				stats.RimMin = h
			}
		}
	}

	// A noisy spike on the rim must not be mistaken for the summit.
	stats.Peak = math.Min(stats.BaseMax, stats.RimMin)
	stats.CraterMinHeight = stats.Peak * p.CraterMinHeightRatio
	stats.CraterFall = (stats.Peak - stats.CraterMinHeight) * p.CraterFallRatio
	rimHeight := stats.Peak - stats.CraterFall

	for y := 0; y < dem.H; y++ {
		for x := 0; x < dem.W; x++ {
			q := m.toEllipse(x, y)
			switch {
			case m.crater.Inside(q):
				ratio := m.craterProfile(m.crater, q, m.power)
				dem.Set(x, y, math.Max((1-ratio)*rimHeight, stats.CraterMinHeight))
			case !m.base.Inside(q):
				ratio := m.flankProfile(m.base, q, m.power)
				dem.Set(x, y, stats.Peak*ratio+noise.At(x, y)*m.detail)
			}
		}
	}

	stats.Offset = dem.ShiftNonNegative()
	return dem, stats
}
