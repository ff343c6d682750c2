// Package pathfind defines core types, options, and sentinel errors for
// grid shortest-path searches.
package pathfind

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrInvalidDimension indicates a non-positive row or column count.
	ErrInvalidDimension = errors.New("pathfind: rows and cols must be positive")
	// ErrOutOfBounds indicates a start or goal coordinate outside the grid.
	ErrOutOfBounds = errors.New("pathfind: start or goal out of bounds")
	// ErrNilWalkable indicates that no walkability predicate was supplied.
	ErrNilWalkable = errors.New("pathfind: walkable predicate is nil")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets returns the (dRow, dCol) neighbor offsets for the connectivity,
// in a fixed clockwise order starting at north. The fixed order is what
// makes tie-breaking among equal-distance paths deterministic.
// Complexity: O(1).
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Options configures the behavior of ShortestPath.
//
// Conn - neighbor connectivity used while expanding the frontier.
type Options struct {
	Conn Connectivity // 4- or 8-directional neighbor expansion
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithConnectivity selects 4- or 8-directional neighbor expansion.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults: Conn4 connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
