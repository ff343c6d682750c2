package pathfind_test

import (
	"testing"

	"github.com/daedalus-go/daedalus/grid"
	"github.com/daedalus-go/daedalus/pathfind"
)

// BenchmarkShortestPath_Open measures a corner-to-corner search on a fully
// open 200x200 grid.
// Complexity: O((R*C) log(R*C))
func BenchmarkShortestPath_Open(b *testing.B) {
	const n = 200
	walkable := func(grid.Coord) bool { return true }
	start := grid.Coord{}
	goal := grid.Coord{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = pathfind.ShortestPath(n, n, walkable, start, goal)
	}
}

// BenchmarkShortestPath_Maze measures a search through a striped grid that
// forces long detours: every other column is solid except one gap.
// Complexity: O((R*C) log(R*C))
func BenchmarkShortestPath_Maze(b *testing.B) {
	const n = 200
	// Column c is a wall for odd c, except the gap row that alternates
	// between top and bottom. The resulting route snakes over the grid.
	walkable := func(c grid.Coord) bool {
		if c.Col%2 == 0 {
			return true
		}
		if (c.Col/2)%2 == 0 {
			return c.Row == 0
		}

		return c.Row == n-1
	}
	start := grid.Coord{}
	goal := grid.Coord{Row: n - 1, Col: n - 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = pathfind.ShortestPath(n, n, walkable, start, goal)
	}
}
