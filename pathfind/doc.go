// Package pathfind implements Dijkstra's shortest-path algorithm over a
// rectangular grid of walkable and blocked cells.
//
// Every move between adjacent walkable cells costs one unit, so the search
// degenerates to uniform-cost Dijkstra: a min-heap frontier keyed by
// accumulated distance, a visited array, and a predecessor array for path
// reconstruction. The goal is finalized as soon as it is popped from the
// heap, so the search never explores farther than it must.
//
// What:
//
//   - ShortestPath computes the minimal sequence of grid coordinates from
//     start to goal through cells accepted by a walkability predicate.
//   - Conn4 (N/E/S/W) or Conn8 (plus diagonals) neighbor connectivity,
//     selected via functional options.
//   - Tie-breaking among equal-distance frontier entries follows the fixed
//     neighbor iteration order, so results are deterministic for a fixed
//     grid.
//
// Why:
//
//   - Dungeon validation: prove a generated entrance can reach the exit.
//   - Navigation hints: expose the shortest route to minimap or AI layers.
//
// Complexity:
//
//   - Time:   O((R*C) log(R*C)) with the binary-heap frontier.
//   - Memory: O(R*C) for distance, visited and predecessor arrays.
//
// Errors:
//
//   - ErrInvalidDimension: rows or cols not positive.
//   - ErrOutOfBounds: start or goal outside the grid.
//   - ErrNilWalkable: no walkability predicate supplied.
//
// An unreachable goal is not an error: ShortestPath reports found=false
// with an empty path, and callers decide whether to regenerate.
package pathfind
