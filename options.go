package mandelplot

import (
	"fmt"
	"runtime"
	"strings"
)

// RemainderPolicy decides what happens to the height%workers rows left
// over when the raster height is not a multiple of the worker count.
type RemainderPolicy uint8

const (
	// RemainderToLastBand clamps the worker count to the height and gives
	// the leftover rows to the last band, so every row is rendered.
	RemainderToLastBand RemainderPolicy = iota

	// RemainderUnassigned leaves the leftover rows to nobody; they stay
	// black. With fewer rows than workers the whole raster stays black.
	RemainderUnassigned
)

// String returns "last" or "gap".
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderToLastBand:
		return "last"
	case RemainderUnassigned:
		return "gap"
	default:
		return fmt.Sprintf("RemainderPolicy(%d)", uint8(p))
	}
}

// ParseRemainderPolicy converts "last" or "gap" to a RemainderPolicy.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch strings.ToLower(s) {
	case "last":
		return RemainderToLastBand, nil
	case "gap":
		return RemainderUnassigned, nil
	default:
		return RemainderToLastBand, fmt.Errorf("%w: %q", ErrUnknownRemainderPolicy, s)
	}
}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := mandelplot.NewRenderer(
//	    mandelplot.WithWorkers(24),
//	    mandelplot.WithRemainder(mandelplot.RemainderUnassigned),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers   int
	remainder RemainderPolicy
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:   runtime.GOMAXPROCS(0),
		remainder: RemainderToLastBand,
	}
}

// WithWorkers sets the degree of parallelism: the number of bands and of
// worker goroutines. Values <= 0 keep the default, GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithRemainder sets the policy for rows left over by the band split.
func WithRemainder(p RemainderPolicy) RendererOption {
	return func(o *rendererOptions) {
		o.remainder = p
	}
}
