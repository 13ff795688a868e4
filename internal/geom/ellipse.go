// Package geom holds the radial geometry used to shape volcano bases and
// craters.
package geom

import (
	"fmt"
	"image"
	"math"
)

// Axis selects one of the ellipse radii.
type Axis int

const (
	LongAxis Axis = iota
	ShortAxis
)

// Ellipse is an axis-aligned ellipse with integer centre and radii. The long
// axis runs along x, the short axis along y. Axes never change after
// construction and every query is a pure function of the queried point.
type Ellipse struct {
	center image.Point
	axes   [2]int
}

// NewEllipse builds an ellipse. Negative radii are treated as zero.
func NewEllipse(center image.Point, long, short int) Ellipse {
	if long < 0 {
		long = 0
	}
	if short < 0 {
		short = 0
	}
	return Ellipse{center: center, axes: [2]int{long, short}}
}

// Center returns the ellipse centre.
func (e Ellipse) Center() image.Point { return e.center }

// LongAxis returns the x radius.
func (e Ellipse) LongAxis() int { return e.axes[0] }

// ShortAxis returns the y radius.
func (e Ellipse) ShortAxis() int { return e.axes[1] }

// Degenerate reports whether either radius is zero.
func (e Ellipse) Degenerate() bool { return e.axes[0] == 0 || e.axes[1] == 0 }

func (e Ellipse) String() string {
	return fmt.Sprintf("center=(%d,%d) long=%d short=%d", e.center.X, e.center.Y, e.axes[0], e.axes[1])
}

func (e Ellipse) offset(p image.Point) (float64, float64) {
	return float64(p.X - e.center.X), float64(p.Y - e.center.Y)
}

// DistanceToCenter returns the euclidean distance from p to the centre.
func (e Ellipse) DistanceToCenter(p image.Point) float64 {
	return math.Hypot(e.offset(p))
}

// AngleToCenter returns the polar angle of p around the centre.
func (e Ellipse) AngleToCenter(p image.Point) float64 {
	dx, dy := e.offset(p)
	return math.Atan2(dy, dx)
}

// RadiusAt returns the ellipse radius along polar angle theta.
func (e Ellipse) RadiusAt(theta float64) float64 {
	a, b := float64(e.axes[0]), float64(e.axes[1])
	den := math.Sqrt(math.Pow(b*math.Cos(theta), 2) + math.Pow(a*math.Sin(theta), 2))
	if den == 0 {
		return 0
	}
	return a * b / den
}

// membership returns the two sides of dx²/a² + dy²/b² <= 1 scaled by a²b²,
// so the comparison is exact on integer lattices.
func (e Ellipse) membership(p image.Point) (num, den int64) {
	dx, dy := int64(p.X-e.center.X), int64(p.Y-e.center.Y)
	a, b := int64(e.axes[0]), int64(e.axes[1])
	return dx*dx*b*b + dy*dy*a*a, a * a * b * b
}

// Inside reports standard ellipse membership. A degenerate ellipse contains
// no points.
func (e Ellipse) Inside(p image.Point) bool {
	if e.Degenerate() {
		return false
	}
	num, den := e.membership(p)
	return num <= den
}

// ConcaveRatio is 1 at the centre, 0 on the boundary and negative outside.
// A degenerate ellipse yields 0.
func (e Ellipse) ConcaveRatio(p image.Point) float64 {
	if e.Degenerate() {
		return 0
	}
	num, den := e.membership(p)
	return 1 - float64(num)/float64(den)
}

// ConvexRatio raises the concave ratio to power. When the result is not real
// the linear ratio is used instead, and an even integer power keeps the sign
// of a negative base so outside points stay negative.
func (e Ellipse) ConvexRatio(p image.Point, power float64) float64 {
	val := e.ConcaveRatio(p)
	ret := math.Pow(val, power)
	if math.IsNaN(ret) {
		return e.LinearRatio(p)
	}
	if power == math.Trunc(power) && math.Mod(power, 2) == 0 && val < 0 {
		ret = -ret
	}
	return ret
}

// LinearRatio is 1 - distance/radius, with the radius taken along the point's
// polar angle. A zero radius yields 0.
func (e Ellipse) LinearRatio(p image.Point) float64 {
	dx, dy := e.offset(p)
	dx, dy = math.Abs(dx), math.Abs(dy)
	radius := e.RadiusAt(math.Atan2(dy, dx))
	if radius == 0 {
		return 0
	}
	return 1 - math.Hypot(dx, dy)/radius
}

// CircleRatio treats the ellipse as a circle with the selected radius.
func (e Ellipse) CircleRatio(p image.Point, axis Axis) float64 {
	radius := float64(e.axes[0])
	if axis == ShortAxis {
		radius = float64(e.axes[1])
	}
	if radius == 0 {
		return 0
	}
	return 1 - e.DistanceToCenter(p)/radius
}
