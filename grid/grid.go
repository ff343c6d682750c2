package grid

import "fmt"

// Grid is a dense, fixed-size 2D container backed by a single linear slice.
// Element (r, c) is stored at index r*cols + c. The dimensions are set once
// at construction and never change; len(cells) always equals rows*cols.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New constructs a rows x cols Grid with every element default-valued.
// Returns ErrInvalidDimension if rows or cols is not positive.
// Complexity: O(rows*cols) time and memory.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}

	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the element at (r, c).
// Returns the zero value and ErrOutOfBounds if the coordinate is outside
// the grid; out-of-bounds access is never clamped.
// Complexity: O(1).
func (g *Grid[T]) At(r, c int) (T, error) {
	if !g.InBounds(r, c) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, r, c, g.rows, g.cols)
	}

	return g.cells[g.index(r, c)], nil
}

// Set stores v at (r, c).
// Returns ErrOutOfBounds if the coordinate is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Set(r, c int, v T) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, r, c, g.rows, g.cols)
	}
	g.cells[g.index(r, c)] = v

	return nil
}

// Fill assigns v to every cell.
// Complexity: O(rows*cols).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Export copies the full backing store, preserving row-major order, into dst.
// If dst is too small (or nil) a new slice is allocated. The returned slice
// holds exactly rows*cols elements and shares no memory with the grid.
// Complexity: O(rows*cols).
func (g *Grid[T]) Export(dst []T) []T {
	if cap(dst) < len(g.cells) {
		dst = make([]T, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	copy(dst, g.cells)

	return dst
}

// index maps (r, c) to its row-major position: r*cols + c.
// Complexity: O(1).
func (g *Grid[T]) index(r, c int) int {
	return r*g.cols + c
}
