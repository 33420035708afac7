package mandelplot

import (
	"errors"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 7680 || cfg.Height != 4320 {
		t.Errorf("default size = %dx%d, want 7680x4320", cfg.Width, cfg.Height)
	}
	if cfg.MaxIter != 1000 {
		t.Errorf("default MaxIter = %d, want 1000", cfg.MaxIter)
	}
	if cfg.Viewport != DefaultViewport {
		t.Errorf("default Viewport = %v", cfg.Viewport)
	}
	if cfg.Palette != PaletteLight || cfg.Name != "mandelbrot" {
		t.Errorf("default palette/name = %v/%q", cfg.Palette, cfg.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"zero iterations", func(c *Config) { c.MaxIter = 0 }, ErrInvalidIterations},
		{"degenerate viewport", func(c *Config) { c.Viewport.ImMax = c.Viewport.ImMin }, ErrInvalidViewport},
		{"bad palette", func(c *Config) { c.Palette = Palette(9) }, ErrUnknownPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	r := NewRenderer()
	if r.Workers() != runtime.GOMAXPROCS(0) {
		t.Errorf("default Workers() = %d, want GOMAXPROCS", r.Workers())
	}
	if r.Remainder() != RemainderToLastBand {
		t.Errorf("default Remainder() = %v", r.Remainder())
	}

	r = NewRenderer(WithWorkers(24), WithRemainder(RemainderUnassigned))
	if r.Workers() != 24 || r.Remainder() != RemainderUnassigned {
		t.Errorf("Workers() = %d, Remainder() = %v", r.Workers(), r.Remainder())
	}

	if NewRenderer(WithWorkers(-2)).Workers() != runtime.GOMAXPROCS(0) {
		t.Error("WithWorkers(-2) should keep the default")
	}
}

func TestParseRemainderPolicy(t *testing.T) {
	if p, err := ParseRemainderPolicy("gap"); err != nil || p != RemainderUnassigned {
		t.Errorf("ParseRemainderPolicy(gap) = %v, %v", p, err)
	}
	if p, err := ParseRemainderPolicy("LAST"); err != nil || p != RemainderToLastBand {
		t.Errorf("ParseRemainderPolicy(LAST) = %v, %v", p, err)
	}
	if _, err := ParseRemainderPolicy("spread"); !errors.Is(err, ErrUnknownRemainderPolicy) {
		t.Errorf("ParseRemainderPolicy(spread) error = %v", err)
	}
	if RemainderToLastBand.String() != "last" || RemainderUnassigned.String() != "gap" {
		t.Error("RemainderPolicy.String() mismatch")
	}
}
