package geom

import (
	"image"
	"sort"
)

// Profile maps a point to a fit ratio against an ellipse. Power is only used
// by power-based profiles.
type Profile func(e Ellipse, p image.Point, power float64) float64

// Profile names understood by Lookup.
const (
	ProfileCircleLong  = "circle-long"
	ProfileCircleShort = "circle-short"
	ProfileConcave     = "concave"
	ProfileConvex      = "convex"
	ProfileLinear      = "linear"
)

var profiles = map[string]Profile{
	ProfileCircleLong: func(e Ellipse, p image.Point, _ float64) float64 {
		return e.CircleRatio(p, LongAxis)
	},
	ProfileCircleShort: func(e Ellipse, p image.Point, _ float64) float64 {
		return e.CircleRatio(p, ShortAxis)
	},
	ProfileConcave: func(e Ellipse, p image.Point, _ float64) float64 {
		return e.ConcaveRatio(p)
	},
	ProfileConvex: func(e Ellipse, p image.Point, power float64) float64 {
		return e.ConvexRatio(p, power)
	},
	ProfileLinear: func(e Ellipse, p image.Point, _ float64) float64 {
		return e.LinearRatio(p)
	},
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, bool) {
	f, ok := profiles[name]
	return f, ok
}

// ProfileNames lists the registered profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
