package mandelplot

import "fmt"

// Viewport is the rectangle of the complex plane mapped onto a raster.
// Pixel (0, 0) maps to (ReMin, ImMin); the real axis runs along x and the
// imaginary axis along y.
type Viewport struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

// DefaultViewport frames the whole set.
var DefaultViewport = Viewport{
	ReMin: -2.5,
	ReMax: 1.5,
	ImMin: -2.0,
	ImMax: 2.0,
}

// Point returns the complex coordinate of pixel (x, y) on a width×height
// raster by linear interpolation:
//
//	real = ReMin + (x/width)·(ReMax−ReMin)
//	imag = ImMin + (y/height)·(ImMax−ImMin)
//
// width and height must be positive. Each product is rounded before the
// addition, as in Escape.
func (v Viewport) Point(x, y, width, height int) complex128 {
	re := v.ReMin + float64((float64(x)/float64(width))*(v.ReMax-v.ReMin))
	im := v.ImMin + float64((float64(y)/float64(height))*(v.ImMax-v.ImMin))
	return complex(re, im)
}

// Validate reports whether the viewport is non-degenerate: each minimum
// must be strictly below its maximum.
func (v Viewport) Validate() error {
	if !(v.ReMin < v.ReMax) {
		return fmt.Errorf("%w: real range [%g, %g] is empty", ErrInvalidViewport, v.ReMin, v.ReMax)
	}
	if !(v.ImMin < v.ImMax) {
		return fmt.Errorf("%w: imaginary range [%g, %g] is empty", ErrInvalidViewport, v.ImMin, v.ImMax)
	}
	return nil
}

// String implements fmt.Stringer.
func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]i", v.ReMin, v.ReMax, v.ImMin, v.ImMax)
}
