package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Thumbnail returns a copy of src scaled down to at most maxWidth pixels
// wide, preserving the aspect ratio. It returns nil when maxWidth is not
// positive or src is already no wider than maxWidth.
func Thumbnail(src image.Image, maxWidth int) *image.RGBA {
	sb := src.Bounds()
	if maxWidth <= 0 || sb.Dx() <= maxWidth || sb.Empty() {
		return nil
	}

	h := max(1, sb.Dy()*maxWidth/sb.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
