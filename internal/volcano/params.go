package volcano

import (
	"fmt"
	"image"
	"strings"
)

// Parameters is one coherent draw of volcano geometry. Heights are in metres,
// axes and centres in pixels of the working raster.
type Parameters struct {
	Height               float64
	CraterMaxHeight      float64
	CraterMinHeight      float64
	CraterMinHeightRatio float64
	CraterFall           float64
	CraterFallRatio      float64

	BaseLongAxis    int
	BaseShortAxis   int
	CraterLongAxis  int
	CraterShortAxis int

	BaseCenter   image.Point
	CraterCenter image.Point
}

func (p Parameters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "height=%.2f\n", p.Height)
	fmt.Fprintf(&b, "crater fall=%.2f (ratio %.4f)\n", p.CraterFall, p.CraterFallRatio)
	fmt.Fprintf(&b, "crater max height=%.2f\n", p.CraterMaxHeight)
	fmt.Fprintf(&b, "crater min height=%.2f (ratio %.4f)\n", p.CraterMinHeight, p.CraterMinHeightRatio)
	fmt.Fprintf(&b, "base axes=%dx%d center=(%d,%d)\n", p.BaseLongAxis, p.BaseShortAxis, p.BaseCenter.X, p.BaseCenter.Y)
	fmt.Fprintf(&b, "crater axes=%dx%d center=(%d,%d)", p.CraterLongAxis, p.CraterShortAxis, p.CraterCenter.X, p.CraterCenter.Y)
	return b.String()
}
