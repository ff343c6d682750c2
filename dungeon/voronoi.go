package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/daedalus-go/daedalus/grid"
)

// Voronoi tuning.
const (
	voronoiCellsPerSite = 64 // grid cells per scattered site
	voronoiMinSites     = 3  // lower bound on scattered sites
	voronoiRidgeWidth   = 1  // ridge: nearest two sites within this distance of each other
)

// generateVoronoi scatters random sites over the grid, assigns every cell
// to its nearest site (Manhattan distance, lower site index wins ties), and
// walls off the ridges where the two nearest sites are nearly equidistant.
// The result is a set of chamber-like regions separated by thin walls.
// One opening is then carved per adjacent region pair, the connectivity
// repair pass stitches any remaining pockets, and the endpoints are placed.
// Complexity: O(rows*cols*sites).
func (d *Dungeon) generateVoronoi() {
	d.reset()
	rows, cols := d.Rows(), d.Cols()

	// 1) Scatter sites. Duplicates are harmless: the later site never wins
	//    a tie, it just wastes a slot.
	numSites := rows * cols / voronoiCellsPerSite
	if numSites < voronoiMinSites {
		numSites = voronoiMinSites
	}
	sites := make([]grid.Coord, numSites)
	for i := range sites {
		sites[i] = grid.Coord{Row: d.rng.Intn(rows), Col: d.rng.Intn(cols)}
	}

	// 2) Partition: interior cells become floor, ridge cells become wall.
	//    nearest[i] remembers the owning site for the adjacency pass.
	nearest := make([]int, rows*cols)
	second := make([]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := grid.Coord{Row: r, Col: c}
			s1, s2 := nearestTwoSites(cell, sites)
			nearest[r*cols+c] = s1
			second[r*cols+c] = s2
			d1 := cell.Manhattan(sites[s1])
			d2 := cell.Manhattan(sites[s2])
			if s1 != s2 && d2-d1 <= voronoiRidgeWidth {
				d.setWall(r, c)
			} else {
				d.setFloor(r, c)
			}
		}
	}

	// 3) Carve one opening per adjacent region pair. Scanning row-major and
	//    recording served pairs in a set keeps the pass deterministic: the
	//    set is only probed, never iterated.
	opened := mapset.New[[2]int]()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if t, _ := d.tiles.At(r, c); t != Wall {
				continue
			}
			a, b := nearest[r*cols+c], second[r*cols+c]
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			pair := [2]int{a, b}
			if opened.Has(pair) {
				continue
			}
			opened.Put(pair)
			d.setFloor(r, c)
		}
	}

	// 4) Backstop for pockets the openings missed, then endpoints.
	d.ensureFloor()
	d.repairConnectivity()
	d.placeEndpoints()
}

// nearestTwoSites returns the indices of the nearest and second-nearest
// sites to cell by Manhattan distance. Lower indices win ties, so the
// partition is deterministic for a fixed site list.
func nearestTwoSites(cell grid.Coord, sites []grid.Coord) (int, int) {
	s1, s2 := 0, 0
	d1, d2 := -1, -1
	for i, s := range sites {
		dist := cell.Manhattan(s)
		switch {
		case d1 < 0 || dist < d1:
			s2, d2 = s1, d1
			s1, d1 = i, dist
		case d2 < 0 || dist < d2:
			s2, d2 = i, dist
		}
	}
	if d2 < 0 {
		s2 = s1
	}

	return s1, s2
}
