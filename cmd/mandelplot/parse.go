package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/mandelplot"
)

// parseDimensions parses "WIDTHxHEIGHT". ok is false, with no error, when
// s has no 'x' separator at all; malformed numbers are an error.
func parseDimensions(s string) (width, height int, ok bool, err error) {
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false, nil
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, false, fmt.Errorf("image width %q: %w", ws, err)
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, false, fmt.Errorf("image height %q: %w", hs, err)
	}
	return width, height, true, nil
}

// parseViewport parses "reMin,reMax,imMin,imMax".
func parseViewport(s string) (mandelplot.Viewport, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return mandelplot.Viewport{}, fmt.Errorf("%w: want reMin,reMax,imMin,imMax, got %q",
			mandelplot.ErrInvalidViewport, s)
	}

	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mandelplot.Viewport{}, fmt.Errorf("viewport bound %q: %w", p, err)
		}
		vals[i] = v
	}

	v := mandelplot.Viewport{ReMin: vals[0], ReMax: vals[1], ImMin: vals[2], ImMax: vals[3]}
	if err := v.Validate(); err != nil {
		return mandelplot.Viewport{}, err
	}
	return v, nil
}

// formatViewport is the inverse of parseViewport.
func formatViewport(v mandelplot.Viewport) string {
	return strings.Join([]string{
		strconv.FormatFloat(v.ReMin, 'g', -1, 64),
		strconv.FormatFloat(v.ReMax, 'g', -1, 64),
		strconv.FormatFloat(v.ImMin, 'g', -1, 64),
		strconv.FormatFloat(v.ImMax, 'g', -1, 64),
	}, ",")
}
