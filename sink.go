package mandelplot

import (
	"fmt"
	"path/filepath"

	intImage "github.com/gogpu/mandelplot/internal/image"
)

// Format is an output file format.
type Format = intImage.Format

// Output formats.
const (
	// FormatPNG is lossless PNG, the default.
	FormatPNG = intImage.FormatPNG

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP = intImage.FormatBMP

	// FormatTIFF is deflate-compressed TIFF.
	FormatTIFF = intImage.FormatTIFF
)

// ParseFormat converts a format name such as "png", "bmp" or "tiff".
func ParseFormat(s string) (Format, error) {
	return intImage.ParseFormat(s)
}

// ImageSink receives a finished raster and persists it under a base name.
type ImageSink interface {
	Save(r *Raster, name string) error
}

// FileSink writes rasters to files named <Dir>/<name><ext>.
type FileSink struct {
	// Dir is the output directory; empty means the working directory.
	Dir string

	// Format selects the encoder and the file extension.
	Format Format

	// Caption, if set, is stamped in the bottom-left corner of the image.
	Caption string

	// Thumbnail, if positive, also writes <name>.thumb<ext> scaled to at
	// most that many pixels wide.
	Thumbnail int
}

var _ ImageSink = FileSink{}

// Path returns the file the sink writes for name.
func (s FileSink) Path(name string) string {
	return filepath.Join(s.Dir, name+s.Format.Ext())
}

// ThumbnailPath returns the file the sink writes the preview of name to.
func (s FileSink) ThumbnailPath(name string) string {
	return filepath.Join(s.Dir, name+".thumb"+s.Format.Ext())
}

// Save encodes r and writes it to s.Path(name), then the thumbnail if
// one is configured. The raster itself is not modified.
func (s FileSink) Save(r *Raster, name string) error {
	log := Logger()

	img := r.ToImage()
	if err := intImage.DrawCaption(img, s.Caption); err != nil {
		return fmt.Errorf("mandelplot: caption: %w", err)
	}

	path := s.Path(name)
	if err := intImage.Save(path, img, s.Format); err != nil {
		return fmt.Errorf("mandelplot: save %s: %w", path, err)
	}
	log.Info("image saved", "path", path, "format", s.Format.String(),
		"width", r.Width(), "height", r.Height())

	if thumb := intImage.Thumbnail(img, s.Thumbnail); thumb != nil {
		thumbPath := s.ThumbnailPath(name)
		if err := intImage.Save(thumbPath, thumb, s.Format); err != nil {
			return fmt.Errorf("mandelplot: save %s: %w", thumbPath, err)
		}
		log.Info("thumbnail saved", "path", thumbPath,
			"width", thumb.Bounds().Dx(), "height", thumb.Bounds().Dy())
	}
	return nil
}
