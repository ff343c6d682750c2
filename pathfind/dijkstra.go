package pathfind

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/daedalus-go/daedalus/grid"
)

// ShortestPath computes the shortest walkable route from start to goal on a
// rows x cols grid, where walkable(c) reports whether cell c may be entered.
// Every move between adjacent walkable cells has unit cost.
//
// Returns:
//
//   - found: whether a route exists.
//   - path:  the ordered coordinates from start to goal inclusive, freshly
//     allocated per call; empty when found is false.
//   - err:   validation failures only; an unreachable goal is not an error.
//
// Behavior:
//
//  1. rows/cols must be positive (ErrInvalidDimension), walkable must be
//     non-nil (ErrNilWalkable), start and goal must lie inside the grid
//     (ErrOutOfBounds).
//  2. A non-walkable start or goal yields found=false with an empty path.
//  3. start == goal yields the trivial single-node path.
//  4. Otherwise classic Dijkstra with a binary-heap frontier and lazy
//     decrease-key: stale heap entries are skipped via the visited array.
//     The search stops as soon as goal is popped.
//
// Complexity:
//
//   - Time:   O((R*C) log(R*C))
//   - Memory: O(R*C)
func ShortestPath(rows, cols int, walkable func(grid.Coord) bool, start, goal grid.Coord, opts ...Option) (bool, []grid.Coord, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return false, nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, rows, cols)
	}

	// 3) Validate the predicate.
	if walkable == nil {
		return false, nil, ErrNilWalkable
	}

	// 4) Validate endpoints lie inside the grid.
	if !inBounds(rows, cols, start) || !inBounds(rows, cols, goal) {
		return false, nil, fmt.Errorf("%w: start=(%d,%d) goal=(%d,%d) in %dx%d",
			ErrOutOfBounds, start.Row, start.Col, goal.Row, goal.Col, rows, cols)
	}

	// 5) A blocked endpoint is a valid "no path" outcome, not an error.
	if !walkable(start) || !walkable(goal) {
		return false, nil, nil
	}

	// 6) Trivial route: start and goal coincide.
	if start == goal {
		return true, []grid.Coord{start}, nil
	}

	// 7) Prepare the runner state: distance, predecessor and visited arrays
	//    indexed row-major, plus the min-heap frontier seeded with start.
	r := newRunner(rows, cols, walkable, cfg.Conn)
	r.init(start)

	// 8) Main loop: pop the nearest unvisited cell, finalize it, relax its
	//    neighbors. Stop as soon as goal is finalized.
	if !r.process(goal) {
		return false, nil, nil
	}

	// 9) Reconstruct the route by walking predecessors back from goal.
	return true, r.reconstruct(start, goal), nil
}

// inBounds reports whether c lies within a rows x cols grid.
func inBounds(rows, cols int, c grid.Coord) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	rows, cols int                   // grid dimensions
	walkable   func(grid.Coord) bool // cell admission predicate
	offsets    [][2]int              // fixed-order neighbor offsets
	dist       []int                 // cell index -> best known distance
	prev       []int                 // cell index -> predecessor index (-1 if none)
	visited    []bool                // cell index -> distance finalized
	pq         cellPQ                // lazy min-heap frontier
}

// newRunner allocates the per-search arrays sized rows*cols.
func newRunner(rows, cols int, walkable func(grid.Coord) bool, conn Connectivity) *runner {
	n := rows * cols
	dist := make([]int, n)
	prev := make([]int, n)
	for i := 0; i < n; i++ {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	return &runner{
		rows:     rows,
		cols:     cols,
		walkable: walkable,
		offsets:  conn.Offsets(),
		dist:     dist,
		prev:     prev,
		visited:  make([]bool, n),
		pq:       make(cellPQ, 0, n/4),
	}
}

// index maps a coordinate to its row-major position.
func (r *runner) index(c grid.Coord) int { return c.Row*r.cols + c.Col }

// coord maps a row-major position back to its coordinate.
func (r *runner) coord(i int) grid.Coord { return grid.Coord{Row: i / r.cols, Col: i % r.cols} }

// init seeds the frontier with the start cell at distance zero.
func (r *runner) init(start grid.Coord) {
	s := r.index(start)
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: s, dist: 0})
}

// process runs the main Dijkstra loop until goal is finalized or the
// frontier drains. Returns whether goal was reached.
func (r *runner) process(goal grid.Coord) bool {
	g := r.index(goal)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*cellItem)
		u := item.idx

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u: its distance is now minimal.
		r.visited[u] = true

		// 4) Early exit: goal distance is final, no need to explore farther.
		if u == g {
			return true
		}

		// 5) Relax every walkable, unvisited neighbor of u.
		r.relax(u)
	}

	return false
}

// relax attempts to improve the distance of each neighbor of cell u.
// Neighbors are visited in the fixed offset order, which keeps equal-cost
// tie-breaking deterministic for a fixed grid.
func (r *runner) relax(u int) {
	uc := r.coord(u)
	for _, d := range r.offsets {
		nc := grid.Coord{Row: uc.Row + d[0], Col: uc.Col + d[1]}
		if !inBounds(r.rows, r.cols, nc) || !r.walkable(nc) {
			continue
		}
		v := r.index(nc)
		if r.visited[v] {
			continue
		}

		// Unit cost per move; strict improvement only, so equal-distance
		// duplicates never enter the heap.
		newDist := r.dist[u] + 1
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &cellItem{idx: v, dist: newDist})
	}
}

// reconstruct walks the predecessor chain from goal back to start and
// returns the route in start-to-goal order.
func (r *runner) reconstruct(start, goal grid.Coord) []grid.Coord {
	s, g := r.index(start), r.index(goal)
	// dist[g] moves means dist[g]+1 cells on the route.
	path := make([]grid.Coord, 0, r.dist[g]+1)
	for at := g; at != -1; at = r.prev[at] {
		path = append(path, r.coord(at))
		if at == s {
			break
		}
	}
	// Reverse in place: predecessors were collected goal-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
