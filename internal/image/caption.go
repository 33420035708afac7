package image

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// captionBackground is drawn behind caption text so it stays readable
// over both light and dark regions.
var captionBackground = color.RGBA{A: 160}

var (
	captionFontOnce sync.Once
	captionFont     *opentype.Font
	captionFontErr  error
)

// loadCaptionFont parses the embedded Go Regular font once.
func loadCaptionFont() (*opentype.Font, error) {
	captionFontOnce.Do(func() {
		captionFont, captionFontErr = opentype.Parse(goregular.TTF)
	})
	if captionFontErr != nil {
		return nil, fmt.Errorf("image: parse caption font: %w", captionFontErr)
	}
	return captionFont, nil
}

// CaptionSize returns the font size in points used for an image of the
// given height: 1/40 of the height, never below 10.
func CaptionSize(height int) float64 {
	return max(10, float64(height)/40)
}

// DrawCaption stamps text in the bottom-left corner of dst on a
// translucent black box. An empty text leaves dst untouched.
func DrawCaption(dst xdraw.Image, text string) error {
	if text == "" {
		return nil
	}

	f, err := loadCaptionFont()
	if err != nil {
		return err
	}

	b := dst.Bounds()
	size := CaptionSize(b.Dy())
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("image: caption face: %w", err)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	pad := int(size / 2)
	advance := font.MeasureString(face, text)

	boxH := (metrics.Ascent + metrics.Descent).Ceil() + 2*pad
	box := image.Rect(b.Min.X, b.Max.Y-boxH, b.Min.X+advance.Ceil()+2*pad, b.Max.Y).Intersect(b)
	xdraw.Draw(dst, box, image.NewUniform(captionBackground), image.Point{}, xdraw.Over)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(b.Min.X+pad, b.Max.Y-pad-metrics.Descent.Ceil()),
	}
	d.DrawString(text)
	return nil
}
