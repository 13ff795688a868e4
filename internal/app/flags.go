package app

import (
	"flag"

	"synthvolcano/internal/volcano"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed  int64
	Size  int
	Angle float64
	View  int
	Panel int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := volcano.DefaultConfig()
	return &Config{Seed: def.Seed, Size: 301, Angle: def.AngleToSensor, View: 720, Panel: 280, TPS: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first volcano")
	fs.IntVar(&c.Size, "size", c.Size, "side length of the elevation raster")
	fs.Float64Var(&c.Angle, "angle", c.Angle, "sensor look angle in radians")
	fs.IntVar(&c.View, "view", c.View, "side length of the raster viewport in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the parameter panel in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// Volcano returns the synthesis config selected by the flags.
func (c *Config) Volcano() volcano.Config {
	cfg := volcano.DefaultConfig()
	cfg.Seed = c.Seed
	cfg.Size = c.Size
	cfg.AngleToSensor = c.Angle
	return cfg
}
