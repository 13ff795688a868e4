package app

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"synthvolcano/internal/core"
	"synthvolcano/internal/render"
	"synthvolcano/internal/volcano"
)

// Layer is one of the rasters the viewer can show.
type Layer int

const (
	LayerDEM Layer = iota
	LayerElevationNoise
	LayerNormals
	LayerReflectance
	LayerProjectedDEM
	LayerProjectedReflectance
	LayerGradients
	LayerDatasetReflectance
	layerCount
)

var layerNames = [layerCount]string{
	"DEM",
	"Elevation noise",
	"Normals",
	"Reflectance",
	"Range DEM",
	"Range reflectance",
	"Dataset gradients",
	"Dataset reflectance",
}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "layer(" + strconv.Itoa(int(l)) + ")"
	}
	return layerNames[l]
}

// rasterGeometry reports whether the layer shares the DEM raster, so the
// ellipse outlines line up with it.
func (l Layer) rasterGeometry() bool {
	return l <= LayerReflectance
}

var (
	baseOutline   = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	craterOutline = color.RGBA{R: 230, G: 60, B: 60, A: 255}
)

// Scene is the model behind the viewer: one generated volcano, the layer on
// display and the adjustable settings.
type Scene struct {
	cfg      volcano.Config
	v        *volcano.Volcano
	layer    Layer
	outlines bool

	cached      *image.RGBA
	cachedLayer Layer
}

// NewScene generates the first volcano for cfg.
func NewScene(cfg volcano.Config) (*Scene, error) {
	s := &Scene{cfg: cfg}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Name identifies the scene in the viewer title.
func (s *Scene) Name() string { return "volcano" }

// Size returns the DEM raster size.
func (s *Scene) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Config returns the settings of the current volcano.
func (s *Scene) Config() volcano.Config { return s.cfg }

// Volcano returns the current run.
func (s *Scene) Volcano() *volcano.Volcano { return s.v }

// Layer returns the layer on display.
func (s *Scene) Layer() Layer { return s.layer }

// SetLayer switches to l, wrapping around the available layers.
func (s *Scene) SetLayer(l Layer) {
	l %= layerCount
	if l < 0 {
		l += layerCount
	}
	if l != s.layer {
		s.layer = l
		s.cached = nil
	}
}

// NextLayer advances to the following layer.
func (s *Scene) NextLayer() { s.SetLayer(s.layer + 1) }

// PrevLayer goes back one layer.
func (s *Scene) PrevLayer() { s.SetLayer(s.layer - 1) }

// SetOutlines toggles the base and crater outlines on DEM-geometry layers.
func (s *Scene) SetOutlines(on bool) {
	if on != s.outlines {
		s.outlines = on
		s.cached = nil
	}
}

// Outlines reports whether ellipse outlines are drawn.
func (s *Scene) Outlines() bool { return s.outlines }

// Reset regenerates the volcano with a new seed.
func (s *Scene) Reset(seed int64) error {
	return s.apply(func(c *volcano.Config) { c.Seed = seed })
}

// Timings reports the stage timings of the current volcano.
func (s *Scene) Timings() []core.StageTiming { return s.v.Timings() }

// Grid returns the raster of the current layer.
func (s *Scene) Grid() *core.Grid {
	switch s.layer {
	case LayerElevationNoise:
		return s.v.ElevationNoise()
	case LayerNormals:
		return s.v.Normals()
	case LayerReflectance:
		return s.v.Reflectance()
	case LayerProjectedDEM:
		return s.v.ProjectedDEM()
	case LayerProjectedReflectance:
		return s.v.ProjectedReflectance()
	case LayerGradients:
		return s.v.Dataset().Gradients
	case LayerDatasetReflectance:
		return s.v.Dataset().Reflectance
	default:
		return s.v.DEM()
	}
}

// Image renders the current layer, caching the result until the layer or the
// volcano changes.
func (s *Scene) Image() *image.RGBA {
	if s.cached != nil && s.cachedLayer == s.layer {
		return s.cached
	}
	mode := render.ModeGray
	if s.layer == LayerDEM || s.layer == LayerProjectedDEM {
		mode = render.ModeTerrain
	}
	img := render.Image(s.Grid(), mode)
	if s.outlines && s.layer.rasterGeometry() {
		render.Outline(img, s.v.Ellipse(volcano.Base), s.v.ToRaster, baseOutline)
		render.Outline(img, s.v.Ellipse(volcano.Crater), s.v.ToRaster, craterOutline)
	}
	s.cached, s.cachedLayer = img, s.layer
	return img
}

// Snapshot lists the volcano parameters preceded by the view state.
func (s *Scene) Snapshot() core.ParameterSnapshot {
	snap := s.v.Snapshot()
	view := core.ParameterGroup{
		Name: "View",
		Params: []core.Parameter{
			{Key: "layer", Label: "Layer", Type: core.ParamTypeString, Value: s.layer.String()},
		},
	}
	snap.Groups = append([]core.ParameterGroup{view}, snap.Groups...)
	return snap
}

// ParameterControls exposes the settings adjustable from the HUD.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
		{Key: "angle", Label: "Angle", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: math.Pi - 0.05, HasMin: true, HasMax: true},
		{Key: "detail", Label: "Detail", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "crater_power", Label: "Crater power", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 8, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting and regenerates the volcano.
func (s *Scene) SetIntParameter(key string, value int) bool {
	if key != "seed" {
		return false
	}
	return s.Reset(int64(value)) == nil
}

// SetFloatParameter updates a float setting and regenerates the volcano.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	var set func(*volcano.Config)
	switch key {
	case "angle":
		set = func(c *volcano.Config) { c.AngleToSensor = value }
	case "detail":
		set = func(c *volcano.Config) { c.DetailAmplitude = value }
	case "crater_power":
		set = func(c *volcano.Config) { c.CraterPower = value }
	default:
		return false
	}
	return s.apply(set) == nil
}

// apply regenerates with a modified config and keeps the previous volcano
// when the new settings are rejected.
func (s *Scene) apply(set func(*volcano.Config)) error {
	prev := s.cfg
	set(&s.cfg)
	if err := s.regenerate(); err != nil {
		s.cfg = prev
		return err
	}
	return nil
}

func (s *Scene) regenerate() error {
	v, err := volcano.Generate(s.cfg)
	if err != nil {
		return fmt.Errorf("generate volcano: %w", err)
	}
	s.v = v
	s.cached = nil
	return nil
}

// LegendLines summarizes the view for the on-screen legend.
func (s *Scene) LegendLines() []string {
	lines := []string{
		fmt.Sprintf("%s  (%d/%d)", s.layer, int(s.layer)+1, int(layerCount)),
		fmt.Sprintf("seed %d", s.cfg.Seed),
	}
	for _, st := range s.Timings() {
		lines = append(lines, fmt.Sprintf("%-12s %6.1f ms", st.Stage, float64(st.Duration.Microseconds())/1000))
	}
	return append(lines, "tab/arrows layer  o outlines  h legend  s new seed")
}
