package dungeon

import (
	"github.com/spakin/disjoint"

	"github.com/daedalus-go/daedalus/grid"
)

// repairConnectivity merges every isolated floor region into the largest
// one. Regions are discovered with union-find over adjacent floor cells;
// each smaller region is then joined to the largest by an L-shaped corridor
// between its closest pair of cells (Manhattan distance, scanned in
// deterministic row-major order).
//
// Policy note: isolated regions are always merged, never discarded or
// regenerated. Merging preserves the organic texture the noise-based
// strategies produce and stays deterministic for a fixed seed.
//
// Complexity: O(rows*cols) for region discovery plus O(|A|*|B|) per merge
// for the closest-pair scan.
func (d *Dungeon) repairConnectivity() {
	regions := d.floorRegions()
	if len(regions) <= 1 {
		return
	}

	// Largest region wins; earlier discovery breaks ties deterministically.
	largest := 0
	for i, reg := range regions {
		if len(reg) > len(regions[largest]) {
			largest = i
		}
	}

	main := regions[largest]
	for i, reg := range regions {
		if i == largest {
			continue
		}
		from, to := closestPair(reg, main)
		// L-corridor: walk the row first, then the column.
		d.carveH(from.Row, from.Col, to.Col)
		d.carveV(to.Col, from.Row, to.Row)
		// Carved cells extend the main region for later merges.
		main = append(main, from)
	}
}

// floorRegions returns the connected floor regions in row-major discovery
// order. Adjacency is 4-directional: carving and validation agree on what
// "connected" means.
func (d *Dungeon) floorRegions() [][]grid.Coord {
	rows, cols := d.Rows(), d.Cols()

	// 1) One union-find element per floor cell.
	elems := make([]*disjoint.Element, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if t, _ := d.tiles.At(r, c); t.Walkable() {
				elems[r*cols+c] = disjoint.NewElement()
			}
		}
	}

	// 2) Union each floor cell with its left and upper floor neighbors.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e := elems[r*cols+c]
			if e == nil {
				continue
			}
			if c > 0 && elems[r*cols+c-1] != nil {
				disjoint.Union(e, elems[r*cols+c-1])
			}
			if r > 0 && elems[(r-1)*cols+c] != nil {
				disjoint.Union(e, elems[(r-1)*cols+c])
			}
		}
	}

	// 3) Group cells by representative, keeping row-major discovery order
	//    so the result is deterministic.
	regionOf := make(map[*disjoint.Element]int)
	var regions [][]grid.Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			e := elems[r*cols+c]
			if e == nil {
				continue
			}
			root := e.Find()
			idx, ok := regionOf[root]
			if !ok {
				idx = len(regions)
				regionOf[root] = idx
				regions = append(regions, nil)
			}
			regions[idx] = append(regions[idx], grid.Coord{Row: r, Col: c})
		}
	}

	return regions
}

// closestPair returns the pair (a in reg, b in main) minimizing Manhattan
// distance. Slices are scanned in order, so equal distances resolve to the
// earliest pair.
func closestPair(reg, main []grid.Coord) (grid.Coord, grid.Coord) {
	from, to := reg[0], main[0]
	best := from.Manhattan(to)
	for _, a := range reg {
		for _, b := range main {
			if dist := a.Manhattan(b); dist < best {
				best = dist
				from, to = a, b
			}
		}
	}

	return from, to
}

// placeEndpoints sets the entrance on the first floor cell in row-major
// order and the exit on the floor cell at maximal breadth-first distance
// from it. After repairConnectivity all floor is one region, so the exit
// is reachable by construction.
// Complexity: O(rows*cols).
func (d *Dungeon) placeEndpoints() {
	rows, cols := d.Rows(), d.Cols()

	// 1) Entrance: first floor cell.
	entrance := grid.Coord{Row: -1, Col: -1}
	for r := 0; r < rows && entrance.Row < 0; r++ {
		for c := 0; c < cols; c++ {
			if t, _ := d.tiles.At(r, c); t == Floor {
				entrance = grid.Coord{Row: r, Col: c}

				break
			}
		}
	}
	if entrance.Row < 0 {
		// No floor at all; ensureFloor should have prevented this.
		d.generateNaive()

		return
	}

	// 2) BFS from the entrance over floor cells.
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = -1
	}
	queue := []grid.Coord{entrance}
	dist[entrance.Row*cols+entrance.Col] = 0
	offsets := [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, off := range offsets {
			v := grid.Coord{Row: u.Row + off[0], Col: u.Col + off[1]}
			if !d.tiles.InBounds(v.Row, v.Col) || dist[v.Row*cols+v.Col] >= 0 {
				continue
			}
			if t, _ := d.tiles.At(v.Row, v.Col); t != Floor {
				continue
			}
			dist[v.Row*cols+v.Col] = dist[u.Row*cols+u.Col] + 1
			queue = append(queue, v)
		}
	}

	// 3) Exit: farthest reached floor cell, row-major tie-break.
	exit, best := entrance, 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if dd := dist[r*cols+c]; dd > best {
				best = dd
				exit = grid.Coord{Row: r, Col: c}
			}
		}
	}
	if exit == entrance {
		// Single reachable floor cell; fall back to the guaranteed layout.
		d.generateNaive()

		return
	}

	_ = d.SetEntrance(entrance.Row, entrance.Col)
	_ = d.SetExit(exit.Row, exit.Col)
}
