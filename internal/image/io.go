package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyImage is returned when asked to encode an image with no pixels.
	ErrEmptyImage = errors.New("image: empty image")
)

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// Save encodes img in the given format into the file at path,
// creating or truncating it.
func Save(path string, img image.Image, f Format) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}
