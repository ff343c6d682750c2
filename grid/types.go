// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/daedalus-go/daedalus.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive row or column count at construction.
	ErrInvalidDimension = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside [0,rows) x [0,cols).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord identifies a single cell by its row and column.
// It is a small comparable value type, so it can serve directly as a
// map or set key in visited-set bookkeeping.
type Coord struct {
	Row, Col int
}

// Manhattan returns the L1 distance between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	dr := c.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
