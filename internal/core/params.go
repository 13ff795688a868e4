package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form values such as profile names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value exposed by a synthesis run.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by a run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// step returns the increment of one click; integer controls move by at
// least 1.
func (c ParameterControl) step() float64 {
	if c.Type == ParamTypeInt {
		return math.Max(math.Round(c.Step), 1)
	}
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// Adjust moves value one step in direction (+1 or -1), clamped to the
// control's bounds. It reports false when the value would not change.
func (c ParameterControl) Adjust(value float64, direction int) (float64, bool) {
	target := value + float64(direction)*c.step()
	if c.HasMin {
		target = math.Max(target, c.Min)
	}
	if c.HasMax {
		target = math.Min(target, c.Max)
	}
	if c.Type == ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-value) > 1e-9
}

// Parse reads a snapshot value for this control.
func (c ParameterControl) Parse(value string) (float64, bool) {
	v, err := strconv.ParseFloat(value, 64)
	return v, err == nil
}

// Format renders a value with a precision matching the control's step.
func (c ParameterControl) Format(value float64) string {
	switch {
	case c.Type == ParamTypeInt:
		return strconv.FormatInt(int64(math.Round(value)), 10)
	case c.step() < 0.1:
		return strconv.FormatFloat(value, 'f', 2, 64)
	default:
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
