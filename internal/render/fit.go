package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales src to the largest size that fits into maxW×maxH while keeping
// its aspect ratio. Range-projected rasters are wider than the DEM, so both
// are fitted into the same viewport.
func Fit(src image.Image, maxW, maxH int) *image.RGBA {
	w, h := FitSize(src.Bounds().Dx(), src.Bounds().Dy(), maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FitSize returns the fitted dimensions for a w×h source; never smaller than 1×1.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 1, 1
	}
	fw, fh := maxW, h*maxW/w
	if fh > maxH {
		fw, fh = w*maxH/h, maxH
	}
	return max(fw, 1), max(fh, 1)
}
