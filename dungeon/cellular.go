package dungeon

// Cellular automata tuning. Generations are fixed, so the work per call is
// bounded by configuration rather than cancellation.
const (
	caWallChance   = 0.45 // initial noise: probability a cell starts as wall
	caGenerations  = 5    // smoothing iterations
	caBirthLimit   = 5    // >= this many wall neighbors turns a cell to wall
	caSurviveLimit = 3    // <= this many wall neighbors turns a cell to floor
)

// generateCellularAutomata seeds the grid with random wall/floor noise and
// smooths it for a fixed number of generations with the classic
// neighbor-count rule (cells outside the grid count as walls, which keeps
// the border solid). The smoothed caves are then stitched together by the
// connectivity repair pass before the endpoints are placed, so the layout
// always validates.
// Complexity: O(rows*cols*caGenerations).
func (d *Dungeon) generateCellularAutomata() {
	d.reset()
	rows, cols := d.Rows(), d.Cols()

	// 1) Random noise fill.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if d.rng.Float64() < caWallChance {
				d.setWall(r, c)
			} else {
				d.setFloor(r, c)
			}
		}
	}

	// 2) Smooth: double-buffered so every generation reads a stable grid.
	next := make([]Tile, rows*cols)
	for gen := 0; gen < caGenerations; gen++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				walls := d.wallNeighbors(r, c)
				cur, _ := d.tiles.At(r, c)
				switch {
				case walls >= caBirthLimit:
					next[r*cols+c] = Wall
				case walls <= caSurviveLimit:
					next[r*cols+c] = Floor
				default:
					next[r*cols+c] = cur
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				_ = d.tiles.Set(r, c, next[r*cols+c])
			}
		}
	}

	// 3) Merge isolated cave pockets and place the endpoints.
	d.ensureFloor()
	d.repairConnectivity()
	d.placeEndpoints()
}

// setWall writes a Wall tile directly; strategies only, like setFloor.
func (d *Dungeon) setWall(r, c int) {
	_ = d.tiles.Set(r, c, Wall)
}

// wallNeighbors counts wall cells in the 8-neighborhood of (r, c).
// Cells outside the grid count as walls.
func (d *Dungeon) wallNeighbors(r, c int) int {
	walls := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			t, err := d.tiles.At(r+dr, c+dc)
			if err != nil || t == Wall {
				walls++
			}
		}
	}

	return walls
}

// ensureFloor guards against degenerate noise that converged to all-Wall:
// it carves the middle row so the repair and endpoint passes always have
// floor to work with.
func (d *Dungeon) ensureFloor() {
	rows, cols := d.Rows(), d.Cols()
	floors := 0
	for r := 0; r < rows && floors < 2; r++ {
		for c := 0; c < cols && floors < 2; c++ {
			if t, _ := d.tiles.At(r, c); t == Floor {
				floors++
			}
		}
	}
	if floors < 2 {
		d.carveH(rows/2, 0, cols-1)
		if cols == 1 {
			d.carveV(0, 0, rows-1)
		}
	}
}
