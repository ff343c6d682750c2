package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/daedalus-go/daedalus/grid"
)

// Drunken walk tuning. The step cap bounds the work when the walker keeps
// revisiting carved cells and the coverage target is never met.
const (
	drunkardBias     = 0.6  // probability of keeping the current direction
	drunkardCoverage = 0.45 // target fraction of carved floor cells
	drunkardStepCap  = 10   // max steps per grid cell
)

// generateDrunkenWalk carves floor along a biased random walk. The walker
// starts at the grid center, keeps its heading with probability
// drunkardBias, and stops once drunkardCoverage of the grid is floor or
// the step budget (drunkardStepCap per cell) runs out. The entrance is the
// walker's starting cell; the exit is the carved cell farthest from it by
// Manhattan distance (ties broken in row-major order), which is reachable
// by construction because the walk carves one connected trail.
// Complexity: O(rows*cols*drunkardStepCap).
func (d *Dungeon) generateDrunkenWalk() {
	d.reset()
	rows, cols := d.Rows(), d.Cols()

	start := grid.Coord{Row: rows / 2, Col: cols / 2}
	pos := start
	dir := d.rng.Intn(4)
	offsets := [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

	// The carved set drives the coverage ratio; the grid itself stays the
	// deterministic record of which cells became floor.
	carved := mapset.New[grid.Coord]()
	carved.Put(pos)
	d.setFloor(pos.Row, pos.Col)

	target := int(drunkardCoverage * float64(rows*cols))
	if target < 2 {
		target = 2
	}

	for steps := 0; steps < rows*cols*drunkardStepCap && carved.Size() < target; steps++ {
		// Stumble: keep the heading with probability drunkardBias.
		if d.rng.Float64() >= drunkardBias {
			dir = d.rng.Intn(4)
		}
		next := grid.Coord{Row: pos.Row + offsets[dir][0], Col: pos.Col + offsets[dir][1]}
		if !d.tiles.InBounds(next.Row, next.Col) {
			// Bounced off the boundary; pick a fresh heading.
			dir = d.rng.Intn(4)

			continue
		}
		pos = next
		carved.Put(pos)
		d.setFloor(pos.Row, pos.Col)
	}

	// Exit: farthest carved cell from the start. Scanning the grid (not the
	// set) keeps the tie-break deterministic.
	exit := start
	best := -1
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t, _ := d.tiles.At(r, c)
			if t != Floor {
				continue
			}
			cell := grid.Coord{Row: r, Col: c}
			if dist := start.Manhattan(cell); dist > best && cell != start {
				best = dist
				exit = cell
			}
		}
	}
	if exit == start {
		// Walk never left the start (step budget exhausted immediately);
		// carve one neighbor so both endpoints exist.
		if cols > 1 {
			exit = grid.Coord{Row: start.Row, Col: start.Col + 1}
			if exit.Col >= cols {
				exit = grid.Coord{Row: start.Row, Col: start.Col - 1}
			}
		} else {
			exit = grid.Coord{Row: start.Row + 1, Col: start.Col}
			if exit.Row >= rows {
				exit = grid.Coord{Row: start.Row - 1, Col: start.Col}
			}
		}
		d.setFloor(exit.Row, exit.Col)
	}

	_ = d.SetEntrance(start.Row, start.Col)
	_ = d.SetExit(exit.Row, exit.Col)
}
