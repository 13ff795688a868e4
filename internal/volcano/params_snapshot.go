package volcano

import (
	"fmt"
	"strconv"

	"synthvolcano/internal/core"
)

// Snapshot lists the run's configuration, sampled geometry and derived
// heights for presentation.
func (v *Volcano) Snapshot() core.ParameterSnapshot {
	cfg, p, s := v.cfg, v.params, v.stats
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				int64Param("seed", "Seed", cfg.Seed),
				intParam("size", "Raster size", cfg.Size),
				floatParam("angle", "Angle to sensor", cfg.AngleToSensor),
				floatParam("detail", "Detail amplitude", cfg.DetailAmplitude),
				floatParam("crater_power", "Crater power", cfg.CraterPower),
				stringParam("base_profile", "Base profile", cfg.BaseProfile),
				stringParam("crater_profile", "Crater profile", cfg.CraterProfile),
			},
		},
		{
			Name: "Heights",
			Params: []core.Parameter{
				floatParam("height", "Height", p.Height),
				floatParam("crater_min_height_ratio", "Crater min height ratio", p.CraterMinHeightRatio),
				floatParam("crater_fall_ratio", "Crater fall ratio", p.CraterFallRatio),
				floatParam("crater_max_height", "Crater max height", p.CraterMaxHeight),
			},
		},
		{
			Name: "Geometry",
			Params: []core.Parameter{
				intParam("base_long_axis", "Base long axis", p.BaseLongAxis),
				intParam("base_short_axis", "Base short axis", p.BaseShortAxis),
				intParam("crater_long_axis", "Crater long axis", p.CraterLongAxis),
				intParam("crater_short_axis", "Crater short axis", p.CraterShortAxis),
				pointParam("base_center", "Base center", p.BaseCenter.X, p.BaseCenter.Y),
				pointParam("crater_center", "Crater center", p.CraterCenter.X, p.CraterCenter.Y),
			},
		},
		{
			Name:    "Carving",
			Summary: "Heights the crater bowl was carved from.",
			Params: []core.Parameter{
				floatParam("peak", "Peak", s.Peak),
				floatParam("crater_floor", "Crater floor", s.CraterMinHeight),
				floatParam("crater_fall", "Crater fall", s.CraterFall),
				floatParam("offset", "Offset", s.Offset),
			},
		},
		{
			Name: "Range",
			Params: []core.Parameter{
				intParam("range_width", "Range width", v.demRange.W),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func pointParam(key, label string, x, y int) core.Parameter {
	return stringParam(key, label, fmt.Sprintf("(%d,%d)", x, y))
}
