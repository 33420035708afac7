// Package parallel provides band-based parallel rendering infrastructure for
// mandelplot.
//
// A raster is divided into horizontal bands of contiguous rows. Bands never
// overlap, so each one can be filled by its own worker through an exclusive
// view of the pixel buffer without any locking. Key pieces:
//
//   - SplitRows partitions a height into bands, with an explicit policy for
//     the rows left over when the height is not divisible by the worker count
//   - WorkerPool runs one job per band and reports a per-job outcome,
//     recovering panics so that one failing band never stops its siblings
package parallel

import (
	"errors"
	"fmt"
)

// ErrPoolClosed is reported for jobs submitted to a closed WorkerPool.
var ErrPoolClosed = errors.New("parallel: pool closed")

// Band is a contiguous range of raster rows assigned to one worker.
type Band struct {
	// Index is the band position, 0 for the band starting at row 0.
	Index int

	// Start is the first row of the band.
	Start int

	// End is one past the last row of the band.
	End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Empty reports whether the band covers no rows.
func (b Band) Empty() bool {
	return b.End <= b.Start
}

// Contains reports whether row y belongs to the band.
func (b Band) Contains(y int) bool {
	return y >= b.Start && y < b.End
}

// String implements fmt.Stringer.
func (b Band) String() string {
	return fmt.Sprintf("band %d [%d,%d)", b.Index, b.Start, b.End)
}

// SplitRows divides height rows into bands of height/workers rows each,
// assigned in order from row 0.
//
// When assignRemainder is true, workers is first clamped to height so no
// band is empty, and the last band also takes the height%workers trailing
// rows; together the bands cover every row.
//
// When assignRemainder is false, exactly workers bands are returned and the
// trailing height%workers rows belong to no band. With fewer rows than
// workers every band is empty.
//
// A non-positive height yields no bands. A non-positive workers is treated
// as one worker.
func SplitRows(height, workers int, assignRemainder bool) []Band {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if assignRemainder {
		workers = min(workers, height)
	}

	size := height / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Index: i, Start: i * size, End: (i + 1) * size}
	}
	if assignRemainder {
		bands[workers-1].End = height
	}
	return bands
}

// Uncovered returns the number of rows in [0,height) that belong to no band.
func Uncovered(height int, bands []Band) int {
	covered := 0
	for _, b := range bands {
		if !b.Empty() {
			covered += b.Rows()
		}
	}
	return height - covered
}
