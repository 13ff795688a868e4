package core

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}
