package mandelplot

import (
	"fmt"
	"math"
	"strings"
)

// Palette selects the intensity of points that never escape.
type Palette uint8

const (
	// PaletteLight paints the set white.
	PaletteLight Palette = iota

	// PaletteDark paints the set black.
	PaletteDark
)

// ParsePalette converts "light" or "dark" (case-insensitive) to a Palette.
func ParsePalette(s string) (Palette, error) {
	switch strings.ToLower(s) {
	case "light":
		return PaletteLight, nil
	case "dark":
		return PaletteDark, nil
	default:
		return PaletteLight, fmt.Errorf("%w: %q", ErrUnknownPalette, s)
	}
}

// String returns "light" or "dark".
func (p Palette) String() string {
	switch p {
	case PaletteLight:
		return "light"
	case PaletteDark:
		return "dark"
	default:
		return fmt.Sprintf("Palette(%d)", uint8(p))
	}
}

// InSet returns the intensity used for points that did not escape.
func (p Palette) InSet() uint8 {
	if p == PaletteDark {
		return 0
	}
	return 255
}

// Shade maps an escape result to an 8-bit gray intensity.
//
// A point that escaped after k iterations gets sin(k/255)·255 truncated
// toward zero. The rule is not monotonic in k. Once k/255
// passes π the sine goes negative; such values saturate to 0, and anything
// above 255 to 255.
//
// A point that did not escape gets p.InSet().
func Shade(iter int, escaped bool, p Palette) uint8 {
	if !escaped {
		return p.InSet()
	}
	return escapeShade(iter)
}

func escapeShade(k int) uint8 {
	v := math.Sin(float64(k)/255.0) * 255.0
	switch {
	case !(v > 0): // also NaN
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// maxShadeEntries caps the size of a ShadeTable. Iteration counts beyond
// the cap are computed directly.
const maxShadeEntries = 1 << 16

// ShadeTable is a precomputed Shade for one iteration budget and palette.
// Lookups are O(1) and the table is safe for concurrent reads.
type ShadeTable struct {
	escaped []uint8
	inSet   uint8
}

// NewShadeTable precomputes Shade for every iteration count below maxIter.
func NewShadeTable(maxIter int, p Palette) *ShadeTable {
	n := min(max(maxIter, 0), maxShadeEntries)
	t := &ShadeTable{
		escaped: make([]uint8, n),
		inSet:   p.InSet(),
	}
	for k := range t.escaped {
		t.escaped[k] = escapeShade(k)
	}
	return t
}

// Lookup returns the same value as Shade for the table's palette.
func (t *ShadeTable) Lookup(iter int, escaped bool) uint8 {
	if !escaped {
		return t.inSet
	}
	if iter >= 0 && iter < len(t.escaped) {
		return t.escaped[iter]
	}
	return escapeShade(iter)
}
