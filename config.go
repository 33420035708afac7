package mandelplot

import "fmt"

// Default configuration values.
const (
	DefaultWidth   = 7680
	DefaultHeight  = 4320
	DefaultMaxIter = 1000
	DefaultName    = "mandelbrot"
)

// Config describes one render. It is not modified by rendering.
type Config struct {
	// Width and Height are the raster dimensions in pixels.
	Width, Height int

	// MaxIter is the iteration budget per pixel.
	MaxIter int

	// Viewport is the region of the complex plane to draw.
	Viewport Viewport

	// Palette selects the intensity of points inside the set.
	Palette Palette

	// Name is the output base name; the sink appends the extension.
	Name string
}

// DefaultConfig returns an 8K render of the whole set with a light bulb.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxIter:  DefaultMaxIter,
		Viewport: DefaultViewport,
		Palette:  PaletteLight,
		Name:     DefaultName,
	}
}

// Validate checks the configuration. Render does not call Validate;
// callers building a Config from user input should.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.MaxIter)
	}
	if err := c.Viewport.Validate(); err != nil {
		return err
	}
	if c.Palette != PaletteLight && c.Palette != PaletteDark {
		return fmt.Errorf("%w: %v", ErrUnknownPalette, c.Palette)
	}
	return nil
}
