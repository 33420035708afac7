// Package image encodes rendered rasters for mandelplot.
//
// It owns everything between a finished pixel buffer and a file on disk:
// choosing an encoder (PNG, BMP, TIFF), stamping an optional caption and
// producing a scaled-down preview.
package image

import (
	"fmt"
	"strings"
)

// Format is an output file format.
type Format uint8

const (
	// FormatPNG is lossless PNG, the default output format.
	FormatPNG Format = iota

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatNames = [formatCount]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the lower-case format name.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string {
	if !f.IsValid() {
		return ""
	}
	return "." + formatNames[f]
}

// ParseFormat converts a format name such as "png" or ".tif" to a Format.
// Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}
