package mandelplot

import (
	"image"
	"image/color"
)

// bytesPerPixel is the raster pixel size: 8-bit R, G and B, no alpha.
const bytesPerPixel = 3

// Raster is a width×height grid of opaque 3-channel 8-bit pixels.
// A new raster is all black.
//
// During a render each worker writes through its own RowBand view, so
// concurrent writers never share a row. Raster implements image.Image.
type Raster struct {
	width  int
	height int
	data   []uint8 // RGB, 3 bytes per pixel, rows top to bottom
}

// NewRaster creates a black raster. Negative dimensions are treated as 0.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int {
	return r.width * bytesPerPixel
}

// Data returns the raw pixel data (RGB format).
func (r *Raster) Data() []uint8 {
	return r.data
}

// SetGray sets pixel (x, y) to the gray level v.
// Out-of-bounds coordinates are ignored.
func (r *Raster) SetGray(x, y int, v uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * bytesPerPixel
	r.data[i+0] = v
	r.data[i+1] = v
	r.data[i+2] = v
}

// RGB returns the channels of pixel (x, y), or zeros when out of bounds.
func (r *Raster) RGB(x, y int) (red, green, blue uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return 0, 0, 0
	}
	i := (y*r.width + x) * bytesPerPixel
	return r.data[i+0], r.data[i+1], r.data[i+2]
}

// Gray returns the red channel of pixel (x, y). Every pixel a render
// writes has R == G == B.
func (r *Raster) Gray(x, y int) uint8 {
	v, _, _ := r.RGB(x, y)
	return v
}

// Rows returns a view of rows [start, end) that shares the raster's
// memory. The view's slice is capped at end, so writes through it can
// never reach rows outside the band. The range is clamped to the raster.
func (r *Raster) Rows(start, end int) RowBand {
	start = min(max(start, 0), r.height)
	end = min(max(end, start), r.height)
	lo := start * r.Stride()
	hi := end * r.Stride()
	return RowBand{
		start: start,
		end:   end,
		width: r.width,
		data:  r.data[lo:hi:hi],
	}
}

// ToImage converts the raster to an opaque image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	src, dst := r.data, img.Pix
	for len(src) >= bytesPerPixel {
		dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 0xff
		src, dst = src[bytesPerPixel:], dst[4:]
	}
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	red, green, blue := r.RGB(x, y)
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}

// RowBand is an exclusive, writable view of a contiguous range of raster
// rows. Row coordinates passed to its methods are raster rows, not offsets
// into the band.
type RowBand struct {
	start int
	end   int
	width int
	data  []uint8
}

// Start returns the first raster row of the band.
func (b RowBand) Start() int {
	return b.start
}

// End returns one past the last raster row of the band.
func (b RowBand) End() int {
	return b.end
}

// SetGray sets pixel (x, y) to the gray level v. Pixels outside the band
// are ignored.
func (b RowBand) SetGray(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < b.start || y >= b.end {
		return
	}
	i := ((y-b.start)*b.width + x) * bytesPerPixel
	b.data[i+0] = v
	b.data[i+1] = v
	b.data[i+2] = v
}
