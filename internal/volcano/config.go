package volcano

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"synthvolcano/internal/geom"
)

// ErrInvalidConfig is returned when a Config cannot drive a synthesis run.
var ErrInvalidConfig = errors.New("volcano: invalid config")

// Config controls the raster geometry, sensor and noise settings of a run.
type Config struct {
	// Size is the side length of the square elevation raster.
	Size int
	// AngleToSensor is the sensor look angle in radians.
	AngleToSensor float64

	Seed int64

	// DetailAmplitude scales the coherent noise added to the flanks.
	DetailAmplitude float64
	// NoiseScale multiplies the normalized raster coordinate before sampling noise.
	NoiseScale float64
	// CraterPower is the exponent of power-based crater profiles.
	CraterPower float64

	BaseProfile   string
	CraterProfile string
	FlankProfile  string

	SpeckleShape float64
	SpeckleScale float64

	// MaxSampleAttempts bounds the sampler's rejection loop.
	MaxSampleAttempts int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:              851,
		AngleToSensor:     1.39626,
		Seed:              1337,
		DetailAmplitude:   10,
		NoiseScale:        5,
		CraterPower:       2.5,
		BaseProfile:       geom.ProfileCircleLong,
		CraterProfile:     geom.ProfileConvex,
		FlankProfile:      geom.ProfileConcave,
		SpeckleShape:      2,
		SpeckleScale:      2,
		MaxSampleAttempts: 1000,
	}
}

// Validate reports the first setting that would make a run undefined.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, c.Size)
	}
	if !(c.AngleToSensor > 0 && c.AngleToSensor < math.Pi) {
		return fmt.Errorf("%w: angle to sensor %g must be in (0, π)", ErrInvalidConfig, c.AngleToSensor)
	}
	for _, name := range []string{c.BaseProfile, c.CraterProfile, c.FlankProfile} {
		if _, ok := geom.Lookup(name); !ok {
			return fmt.Errorf("%w: unknown profile %q (known: %s)", ErrInvalidConfig, name, strings.Join(geom.ProfileNames(), ", "))
		}
	}
	if c.SpeckleShape <= 0 || c.SpeckleScale <= 0 {
		return fmt.Errorf("%w: speckle shape %g and scale %g must be positive", ErrInvalidConfig, c.SpeckleShape, c.SpeckleScale)
	}
	if c.MaxSampleAttempts <= 0 {
		return fmt.Errorf("%w: max sample attempts %d must be positive", ErrInvalidConfig, c.MaxSampleAttempts)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floatKeys := map[string]*float64{
		"angle":         &c.AngleToSensor,
		"detail":        &c.DetailAmplitude,
		"noise_scale":   &c.NoiseScale,
		"crater_power":  &c.CraterPower,
		"speckle_shape": &c.SpeckleShape,
		"speckle_scale": &c.SpeckleScale,
	}
	for key, dst := range floatKeys {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["base_profile"]; ok && v != "" {
		c.BaseProfile = v
	}
	if v, ok := cfg["crater_profile"]; ok && v != "" {
		c.CraterProfile = v
	}
	if v, ok := cfg["flank_profile"]; ok && v != "" {
		c.FlankProfile = v
	}
	if v, ok := cfg["max_sample_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSampleAttempts = parsed
		}
	}
	return c
}
