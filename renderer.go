package mandelplot

import (
	"time"

	"github.com/gogpu/mandelplot/internal/parallel"
)

// Renderer fills rasters with the escape-time image of a viewport.
//
// The raster is split into horizontal bands, one per worker, and every
// band is filled concurrently through its own RowBand view. Bands are
// disjoint, so no locking is involved.
//
// A Renderer holds only its options and may be reused and shared between
// goroutines.
type Renderer struct {
	workers   int
	remainder RemainderPolicy

	// beforeBand, when set, runs on the worker before a band is filled.
	// A non-nil error or a panic fails that band.
	beforeBand func(Band) error
}

// NewRenderer creates a renderer. By default it uses GOMAXPROCS workers
// and renders every row (RemainderToLastBand).
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		workers:   o.workers,
		remainder: o.remainder,
	}
}

// Workers returns the configured degree of parallelism.
func (r *Renderer) Workers() int {
	return r.workers
}

// Remainder returns the configured remainder policy.
func (r *Renderer) Remainder() RemainderPolicy {
	return r.remainder
}

// Bands returns the row bands a render of the given height uses.
func (r *Renderer) Bands(height int) []Band {
	return parallel.SplitRows(height, r.workers, r.remainder == RemainderToLastBand)
}

// Render computes every assigned pixel of cfg and returns the raster.
//
// Render blocks until all bands are finished. The configuration is used
// as given; see Config.Validate.
//
// The raster is always returned. If some bands failed, the error is a
// *RenderError naming them; the other bands are complete and the raster
// is still worth saving.
func (r *Renderer) Render(cfg Config) (*Raster, error) {
	log := Logger()
	start := time.Now()

	raster := NewRaster(cfg.Width, cfg.Height)
	shades := NewShadeTable(cfg.MaxIter, cfg.Palette)
	bands := r.Bands(raster.Height())
	if len(bands) == 0 {
		return raster, nil
	}

	pool := parallel.NewWorkerPool(len(bands))
	defer pool.Close()

	jobs := make([]parallel.Job, len(bands))
	for i, b := range bands {
		view := raster.Rows(b.Start, b.End)
		jobs[i] = func() error {
			return r.renderBand(b, view, cfg, shades)
		}
	}

	log.Debug("render started",
		"width", cfg.Width, "height", cfg.Height, "max_iter", cfg.MaxIter,
		"viewport", cfg.Viewport.String(), "palette", cfg.Palette.String(),
		"bands", len(bands), "remainder", r.remainder.String())

	var faults []BandFault
	for i, err := range pool.ExecuteAll(jobs) {
		if err == nil {
			continue
		}
		faults = append(faults, BandFault{Band: bands[i], Err: err})
		log.Warn("band failed", "band", bands[i].Index,
			"start", bands[i].Start, "end", bands[i].End, "err", err)
	}

	log.Info("render finished",
		"width", cfg.Width, "height", cfg.Height,
		"bands", len(bands), "failed", len(faults),
		"unassigned_rows", parallel.Uncovered(raster.Height(), bands),
		"elapsed", time.Since(start))

	if len(faults) > 0 {
		return raster, &RenderError{Faults: faults, Bands: len(bands)}
	}
	return raster, nil
}

// renderBand fills the rows of b through view.
func (r *Renderer) renderBand(b Band, view RowBand, cfg Config, shades *ShadeTable) error {
	if r.beforeBand != nil {
		if err := r.beforeBand(b); err != nil {
			return err
		}
	}

	start := time.Now()
	for y := b.Start; y < b.End; y++ {
		for x := range cfg.Width {
			c := cfg.Viewport.Point(x, y, cfg.Width, cfg.Height)
			view.SetGray(x, y, shades.Lookup(Escape(c, cfg.MaxIter)))
		}
	}

	Logger().Debug("band rendered", "band", b.Index, "rows", b.Rows(), "elapsed", time.Since(start))
	return nil
}

// Render renders cfg with a default Renderer.
func Render(cfg Config) (*Raster, error) {
	return NewRenderer().Render(cfg)
}
