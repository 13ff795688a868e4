package render

import (
	"image"
	"image/color"

	"synthvolcano/internal/geom"
)

// Outline marks the boundary cells of e on img. Boundary cells lie inside the
// ellipse with at least one 4-neighbour outside it. toRaster maps points of
// the ellipse frame onto image pixels; cells that land outside img are
// skipped. Degenerate ellipses draw nothing.
func Outline(img *image.RGBA, e geom.Ellipse, toRaster func(image.Point) image.Point, col color.RGBA) int {
	if e.Degenerate() {
		return 0
	}
	c := e.Center()
	r := e.LongAxis()
	if e.ShortAxis() > r {
		r = e.ShortAxis()
	}
	bounds := img.Bounds()
	drawn := 0
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			q := image.Pt(x, y)
			if !e.Inside(q) || !onBoundary(e, q) {
				continue
			}
			p := toRaster(q)
			if !p.In(bounds) {
				continue
			}
			img.SetRGBA(p.X, p.Y, col)
			drawn++
		}
	}
	return drawn
}

var neighbours4 = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func onBoundary(e geom.Ellipse, q image.Point) bool {
	for _, d := range neighbours4 {
		if !e.Inside(q.Add(d)) {
			return true
		}
	}
	return false
}
