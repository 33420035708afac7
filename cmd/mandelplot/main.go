// Command mandelplot renders the Mandelbrot set to an image file.
//
// Usage:
//
//	mandelplot [-i max_iter] [-d WIDTHxHEIGHT] [-n name] [-p light|dark] [flags]
//
// The image is written to <name>.png (or .bmp/.tiff with -f).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandelplot"
)

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line flags.
type options struct {
	maxIter    int
	dimensions string
	name       string
	palette    string
	viewport   string
	workers    int
	remainder  string
	format     string
	caption    string
	thumbnail  int
	verbose    bool
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("mandelplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	const (
		iterUsage  = "maximum amount of iterations to decide whether a point escapes to infinity"
		dimUsage   = "image dimensions (WIDTHxHEIGHT)"
		nameUsage  = "output image name, without extension"
		palUsage   = "bulb color (light, dark)"
		workUsage  = "number of parallel workers (0 = GOMAXPROCS)"
		fmtUsage   = "output format (png, bmp, tiff)"
		defaultDim = "7680x4320"
	)

	fs.IntVar(&o.maxIter, "max_iter", mandelplot.DefaultMaxIter, iterUsage)
	fs.IntVar(&o.maxIter, "i", mandelplot.DefaultMaxIter, iterUsage)
	fs.StringVar(&o.dimensions, "image_dimensions", defaultDim, dimUsage)
	fs.StringVar(&o.dimensions, "d", defaultDim, dimUsage)
	fs.StringVar(&o.name, "image_name", mandelplot.DefaultName, nameUsage)
	fs.StringVar(&o.name, "n", mandelplot.DefaultName, nameUsage)
	fs.StringVar(&o.palette, "palette", "light", palUsage)
	fs.StringVar(&o.palette, "p", "light", palUsage)
	fs.IntVar(&o.workers, "workers", 0, workUsage)
	fs.IntVar(&o.workers, "w", 0, workUsage)
	fs.StringVar(&o.format, "format", "png", fmtUsage)
	fs.StringVar(&o.format, "f", "png", fmtUsage)

	fs.StringVar(&o.viewport, "viewport", formatViewport(mandelplot.DefaultViewport),
		"region of the complex plane as reMin,reMax,imMin,imMax")
	fs.StringVar(&o.remainder, "remainder", "last",
		"rows left over by the band split: last (render in last band) or gap (leave black)")
	fs.StringVar(&o.caption, "caption", "", "text stamped in the bottom-left corner of the image")
	fs.IntVar(&o.thumbnail, "thumbnail", 0, "also write a preview at most this many pixels wide")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	return fs
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	mandelplot.SetLogger(logger)
	defer mandelplot.SetLogger(nil)

	cfg, renderer, sink, err := o.build(logger)
	if err != nil {
		fmt.Fprintf(stderr, "mandelplot: %v\n", err)
		return exitUsage
	}

	start := time.Now()
	raster, err := renderer.Render(cfg)
	if err != nil {
		// The completed bands are still saved.
		logger.Warn("render incomplete", "err", err)
	}

	p := message.NewPrinter(language.English)
	logger.Info("rendered",
		"pixels", p.Sprintf("%d", cfg.Width*cfg.Height),
		"workers", renderer.Workers(),
		"elapsed", time.Since(start))

	if err := sink.Save(raster, cfg.Name); err != nil {
		logger.Error("could not save image", "err", err)
		fmt.Fprintf(stderr, "Could not save image: %v\n", err)
		return exitOK
	}
	fmt.Fprintln(stdout, "Saved")
	return exitOK
}

// build turns the flags into a validated render configuration.
func (o options) build(logger *slog.Logger) (mandelplot.Config, *mandelplot.Renderer, mandelplot.FileSink, error) {
	cfg := mandelplot.DefaultConfig()
	cfg.MaxIter = o.maxIter
	cfg.Name = o.name

	w, h, ok, err := parseDimensions(o.dimensions)
	switch {
	case err != nil:
		return cfg, nil, mandelplot.FileSink{}, err
	case ok:
		cfg.Width, cfg.Height = w, h
	default:
		logger.Warn("dimensions not in WIDTHxHEIGHT form, using default",
			"value", o.dimensions, "width", cfg.Width, "height", cfg.Height)
	}

	if cfg.Palette, err = mandelplot.ParsePalette(o.palette); err != nil {
		logger.Warn("unknown palette, using light", "value", o.palette)
	}

	if cfg.Viewport, err = parseViewport(o.viewport); err != nil {
		return cfg, nil, mandelplot.FileSink{}, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, mandelplot.FileSink{}, err
	}

	remainder, err := mandelplot.ParseRemainderPolicy(o.remainder)
	if err != nil {
		return cfg, nil, mandelplot.FileSink{}, err
	}
	if o.workers < 0 {
		return cfg, nil, mandelplot.FileSink{}, fmt.Errorf("invalid worker count %d", o.workers)
	}

	format, err := mandelplot.ParseFormat(o.format)
	if err != nil {
		return cfg, nil, mandelplot.FileSink{}, err
	}
	if o.thumbnail < 0 {
		return cfg, nil, mandelplot.FileSink{}, fmt.Errorf("invalid thumbnail width %d", o.thumbnail)
	}

	renderer := mandelplot.NewRenderer(
		mandelplot.WithWorkers(o.workers),
		mandelplot.WithRemainder(remainder),
	)
	sink := mandelplot.FileSink{
		Format:    format,
		Caption:   o.caption,
		Thumbnail: o.thumbnail,
	}
	return cfg, renderer, sink, nil
}
