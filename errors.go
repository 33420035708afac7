package mandelplot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/mandelplot/internal/parallel"
)

// Configuration errors.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("mandelplot: invalid dimensions")

	// ErrInvalidIterations is returned when the iteration budget is not positive.
	ErrInvalidIterations = errors.New("mandelplot: invalid iteration budget")

	// ErrInvalidViewport is returned when a viewport axis has min >= max.
	ErrInvalidViewport = errors.New("mandelplot: invalid viewport")

	// ErrUnknownPalette is returned for palette names other than light and dark.
	ErrUnknownPalette = errors.New("mandelplot: unknown palette")

	// ErrUnknownRemainderPolicy is returned for unrecognised remainder policy names.
	ErrUnknownRemainderPolicy = errors.New("mandelplot: unknown remainder policy")
)

// ErrPartialRender matches any *RenderError via errors.Is.
var ErrPartialRender = errors.New("mandelplot: partial render")

// Band is a contiguous range of raster rows assigned to one worker.
type Band = parallel.Band

// BandFault records a band whose worker failed.
type BandFault struct {
	// Band is the band that was not completed.
	Band Band

	// Err is what the worker returned, or the recovered panic.
	Err error
}

// RenderError reports a render in which some bands failed. The raster
// returned alongside it holds every band that completed; rows of failed
// bands may be partly written or still black.
type RenderError struct {
	// Faults lists the failed bands in band order.
	Faults []BandFault

	// Bands is the total number of bands in the render.
	Bands int
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "mandelplot: %d of %d bands failed", len(e.Faults), e.Bands)
	for i, f := range e.Faults {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		fmt.Fprintf(&sb, "%v: %v", f.Band, f.Err)
	}
	return sb.String()
}

// Is reports whether target is ErrPartialRender.
func (e *RenderError) Is(target error) bool {
	return target == ErrPartialRender
}

// Unwrap returns the individual band errors.
func (e *RenderError) Unwrap() []error {
	errs := make([]error, len(e.Faults))
	for i, f := range e.Faults {
		errs[i] = f.Err
	}
	return errs
}

// FailedBands returns the failed bands.
func (e *RenderError) FailedBands() []Band {
	bands := make([]Band, len(e.Faults))
	for i, f := range e.Faults {
		bands[i] = f.Band
	}
	return bands
}
