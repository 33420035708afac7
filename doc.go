// Package mandelplot renders the Mandelbrot set as a grayscale escape-time
// image.
//
// # Overview
//
// Every pixel of a raster is mapped to a point c of the complex plane, the
// orbit of z <- z² + c is followed from z = 0, and the number of iterations
// before |z| exceeds 2 decides the pixel's gray level. Rows are split into
// bands that are filled concurrently.
//
// # Quick Start
//
//	import "github.com/gogpu/mandelplot"
//
//	cfg := mandelplot.DefaultConfig()
//	cfg.Width, cfg.Height = 1920, 1080
//
//	r, err := mandelplot.NewRenderer().Render(cfg)
//	if err != nil {
//	    // Some bands failed; r holds the rest.
//	    log.Print(err)
//	}
//
//	sink := mandelplot.FileSink{Format: mandelplot.FormatPNG}
//	if err := sink.Save(r, cfg.Name); err != nil { // writes mandelbrot.png
//	    log.Print(err)
//	}
//
// # Shading
//
// A point that escapes after k iterations is drawn with intensity
// sin(k/255)·255, truncated, negative values clamped to 0. Points that never
// escape are white with PaletteLight and black with PaletteDark.
//
// # Parallelism
//
// The degree of parallelism defaults to GOMAXPROCS and is set with
// WithWorkers. When the height is not a multiple of the worker count,
// WithRemainder chooses between rendering the leftover rows in the last
// band (the default) and leaving them black.
//
// # Coordinate System
//
//   - Pixel (0,0) is the top-left corner and maps to (ReMin, ImMin)
//   - X increases right along the real axis
//   - Y increases down along the imaginary axis
package mandelplot

// Version is the current version of the module.
const Version = "0.1.0"
