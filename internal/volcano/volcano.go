// Package volcano synthesizes volcano terrain and renders it into a
// side-looking range geometry.
//
// A run samples the geometry, builds the elevation field, derives normals and
// reflectance, and finally projects both rasters into slant range with hole
// filling and speckle. One seed determines every grid of a run.
package volcano

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/spatial/r3"

	"synthvolcano/internal/core"
	"synthvolcano/internal/geom"
	pcore "synthvolcano/pkg/core"
)

// EllipseKind selects one of the two ellipses of a volcano.
type EllipseKind int

const (
	Base EllipseKind = iota
	Crater
)

// Pipeline stage names reported in Timings.
const (
	StageElevation   = "elevation"
	StageReflectance = "reflectance"
	StageProjection  = "projection"
)

// Volcano is one completed synthesis run. All grids are produced during New
// and never change afterwards; accessors hand out copies.
type Volcano struct {
	cfg    Config
	params Parameters
	sensor r3.Vec
	base   geom.Ellipse
	crater geom.Ellipse
	stats  ElevationStats

	dem         *core.Grid
	demNoise    *core.Grid
	normals     *core.Grid
	reflectance *core.Grid
	demRange    *core.Grid
	reflRange   *core.Grid

	timings []core.StageTiming
}

// Generate samples parameters from cfg.Seed and runs the whole pipeline.
func Generate(cfg Config) (*Volcano, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := pcore.NewRNG(cfg.Seed)
	p, err := Sample(rng.Source(), cfg.MaxSampleAttempts)
	if err != nil {
		return nil, fmt.Errorf("sample seed %d: %w", cfg.Seed, err)
	}
	return New(p, cfg, rng)
}

// New runs the pipeline for fixed parameters. The noise fields and speckle
// draw from rng in that order, so the same rng state reproduces the run.
func New(p Parameters, cfg Config, rng *pcore.RNG) (*Volcano, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := &Volcano{
		cfg:    cfg,
		params: p,
		sensor: SensorDirection(cfg.AngleToSensor),
		base:   geom.NewEllipse(p.BaseCenter, p.BaseLongAxis, p.BaseShortAxis),
		crater: geom.NewEllipse(p.CraterCenter, p.CraterLongAxis, p.CraterShortAxis),
	}
	detail := NewNoise(rng.LegacySource(), cfg.NoiseScale)
	albedo := NewNoise(rng.LegacySource(), cfg.NoiseScale)
	sw := core.NewStopwatch()

	v.demNoise = detail.Sample(cfg.Size, cfg.Size)
	v.dem, v.stats = BuildElevation(p, cfg, v.demNoise)
	sw.Lap(StageElevation)

	v.normals, v.reflectance = Reflect(v.dem, v.sensor, albedo.Sample(cfg.Size, cfg.Size))
	sw.Lap(StageReflectance)

	demRange, reflRange := Project(v.dem, v.reflectance, v.sensor)
	v.demRange = Inpaint(demRange)
	v.reflRange = Speckle(Inpaint(reflRange), cfg.SpeckleShape, cfg.SpeckleScale, rng.Source())
	sw.Lap(StageProjection)

	v.timings = sw.Timings()
	return v, nil
}

// Config returns the configuration the run was built with.
func (v *Volcano) Config() Config { return v.cfg }

// Parameters returns the geometry the run was built from.
func (v *Volcano) Parameters() Parameters { return v.params }

// Stats returns the intermediate heights of the elevation pass.
func (v *Volcano) Stats() ElevationStats { return v.stats }

// SensorDirection returns the unit look vector of the run.
func (v *Volcano) SensorDirection() r3.Vec { return v.sensor }

// Ellipse returns the base or crater ellipse.
func (v *Volcano) Ellipse(kind EllipseKind) geom.Ellipse {
	if kind == Crater {
		return v.crater
	}
	return v.base
}

// DEM returns the elevation grid.
func (v *Volcano) DEM() *core.Grid { return v.dem.Clone() }

// ElevationNoise returns the coherent detail noise sampled per DEM cell.
func (v *Volcano) ElevationNoise() *core.Grid { return v.demNoise.Clone() }

// Normals returns the 3-channel surface normal grid.
func (v *Volcano) Normals() *core.Grid { return v.normals.Clone() }

// Reflectance returns the reflectance grid in the DEM geometry.
func (v *Volcano) Reflectance() *core.Grid { return v.reflectance.Clone() }

// ProjectedDEM returns the elevation grid in range coordinates.
func (v *Volcano) ProjectedDEM() *core.Grid { return v.demRange.Clone() }

// ProjectedReflectance returns the speckled reflectance in range coordinates.
func (v *Volcano) ProjectedReflectance() *core.Grid { return v.reflRange.Clone() }

// Dataset derives the training pair from the range-projected rasters.
func (v *Volcano) Dataset() Dataset { return NewDataset(v.demRange, v.reflRange) }

// Timings reports how long each pipeline stage took.
func (v *Volcano) Timings() []core.StageTiming {
	return append([]core.StageTiming(nil), v.timings...)
}

// ToRaster maps a point in the ellipse frame back onto the DEM raster.
func (v *Volcano) ToRaster(q image.Point) image.Point {
	half := v.cfg.Size / 2
	return q.Sub(v.params.BaseCenter).Add(image.Pt(half, half))
}
