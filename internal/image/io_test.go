package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// grayRamp returns an opaque RGBA image whose pixel (x, y) is gray x*16+y.
func grayRamp(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			v := uint8(x*16 + y)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestEncode_RoundTrip(t *testing.T) {
	src := grayRamp(8, 6)

	for _, f := range []Format{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			got, name, err := image.Decode(&buf)
			if err != nil {
				t.Fatalf("image.Decode() error = %v", err)
			}
			if name != f.String() {
				t.Errorf("decoded format = %q, want %q", name, f.String())
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
			}
			for y := range 6 {
				for x := range 8 {
					r, g, b, _ := got.At(x, y).RGBA()
					want := uint32(x*16+y) * 0x101
					if r != want || g != want || b != want {
						t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want %d", x, y, r, g, b, want)
					}
				}
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer

	if err := Encode(&buf, grayRamp(2, 2), Format(99)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(bad format) error = %v, want ErrUnsupportedFormat", err)
	}
	if err := Encode(&buf, image.NewRGBA(image.Rect(0, 0, 0, 0)), FormatPNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(empty) error = %v, want ErrEmptyImage", err)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(path, grayRamp(4, 4), FormatPNG); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if _, _, err := image.Decode(f); err != nil {
		t.Errorf("saved file does not decode: %v", err)
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")

	err := Save(path, grayRamp(2, 2), FormatPNG)
	if err == nil {
		t.Fatal("Save() into missing directory succeeded, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Save() error = %v, want wrapping os.ErrNotExist", err)
	}
}
