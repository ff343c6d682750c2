// Package grid provides a fixed-size, row-major dense 2D container and the
// Coord value type shared by the pathfinding and dungeon packages.
//
// What:
//
//   - Grid[T] stores rows x cols elements of any type in one linear slice.
//   - Element (r, c) lives at index r*cols + c; dimensions never change
//     after construction.
//   - Export copies the backing store row-major into a caller-supplied
//     buffer: the sole bridge to rendering collaborators.
//   - Coord is a comparable (row, col) pair, usable as a map or set key.
//
// Why:
//
//   - Dungeon maps: one tile kind per cell, no dynamic resizing.
//   - Pathfinding: row-major indices make visited/distance arrays cheap.
//   - Export: renderers consume a flat buffer without reaching into the grid.
//
// Complexity:
//
//   - At / Set / InBounds: O(1).
//   - Fill / Export:       O(rows*cols).
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols not positive at construction.
//   - ErrOutOfBounds: coordinate outside [0,rows) x [0,cols); access is
//     never silently clamped or wrapped.
package grid
