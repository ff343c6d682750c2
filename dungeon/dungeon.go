package dungeon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/daedalus-go/daedalus/grid"
	"github.com/daedalus-go/daedalus/pathfind"
)

// Dungeon is the base dungeon variant: a dense tile grid with entrance and
// exit tracking, a seeded deterministic random stream, and the Naive
// generation fallback. A Dungeon is exclusively owned by one caller; it is
// not safe for concurrent use.
type Dungeon struct {
	tiles    *grid.Grid[Tile]      // dense tile storage, row-major
	entrance grid.Coord            // valid only when hasEntrance
	exit     grid.Coord            // valid only when hasExit
	hasEntrance, hasExit bool
	seed     int64                 // stored so generation is reproducible
	rng      *rand.Rand            // per-model stream, never reseeded mid-generation
	conn     pathfind.Connectivity // movement connectivity for FindPath
	state    State                 // generation lifecycle
	hot      []grid.Coord          // cached entrance-to-exit path
}

// compile-time interface checks
var (
	_ Model = (*Dungeon)(nil)
	_ Model = (*Rogue)(nil)
)

// New constructs a rows x cols Dungeon with every cell set to Wall and no
// entrance or exit. The seed defaults to a time-derived value when WithSeed
// is not supplied; either way it is stored and queryable via Seed.
// Returns grid.ErrInvalidDimension if rows or cols is not positive.
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) (*Dungeon, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seedSet {
		cfg.Seed = time.Now().UnixNano()
	}

	tiles, err := grid.New[Tile](rows, cols)
	if err != nil {
		return nil, err
	}
	// Tile zero value is Wall, so the grid is already all-Wall.

	return &Dungeon{
		tiles: tiles,
		seed:  cfg.Seed,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		conn:  cfg.Conn,
		state: StateUninitialized,
	}, nil
}

// Rows returns the number of rows.
func (d *Dungeon) Rows() int { return d.tiles.Rows() }

// Cols returns the number of columns.
func (d *Dungeon) Cols() int { return d.tiles.Cols() }

// Seed returns the seed the model's random stream was initialized with.
func (d *Dungeon) Seed() int64 { return d.seed }

// State returns the current generation lifecycle state.
func (d *Dungeon) State() State { return d.state }

// Entrance returns the entrance coordinate and whether one is set.
func (d *Dungeon) Entrance() (grid.Coord, bool) { return d.entrance, d.hasEntrance }

// Exit returns the exit coordinate and whether one is set.
func (d *Dungeon) Exit() (grid.Coord, bool) { return d.exit, d.hasExit }

// TileAt returns the tile kind at (r, c).
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (d *Dungeon) TileAt(r, c int) (Tile, error) {
	return d.tiles.At(r, c)
}

// SetTile stores tile kind t at (r, c), maintaining the single-entrance and
// single-exit invariants:
//
//   - setting Entrance resets any previously stored entrance cell to Floor
//     before the new one is recorded (likewise for Exit);
//   - overwriting the current entrance cell with another kind clears the
//     stored entrance coordinate (likewise for Exit).
//
// Any successful mutation invalidates a previously validated path.
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (d *Dungeon) SetTile(r, c int, t Tile) error {
	if !d.tiles.InBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", grid.ErrOutOfBounds, r, c, d.Rows(), d.Cols())
	}
	at := grid.Coord{Row: r, Col: c}

	// Relocate the unique entrance/exit markers.
	if t == Entrance && d.hasEntrance && d.entrance != at {
		_ = d.tiles.Set(d.entrance.Row, d.entrance.Col, Floor)
	}
	if t == Exit && d.hasExit && d.exit != at {
		_ = d.tiles.Set(d.exit.Row, d.exit.Col, Floor)
	}

	// Keep the stored coordinates consistent with the stored tile kinds.
	switch t {
	case Entrance:
		d.entrance, d.hasEntrance = at, true
		if d.hasExit && d.exit == at {
			d.hasExit = false
		}
	case Exit:
		d.exit, d.hasExit = at, true
		if d.hasEntrance && d.entrance == at {
			d.hasEntrance = false
		}
	default:
		if d.hasEntrance && d.entrance == at {
			d.hasEntrance = false
		}
		if d.hasExit && d.exit == at {
			d.hasExit = false
		}
	}

	_ = d.tiles.Set(r, c, t)

	// Lifecycle bookkeeping: mutation invalidates a validated path, and a
	// hand-built grid reaches Generated once both endpoints exist.
	if d.state == StateValidated {
		d.state = StateGenerated
		d.hot = nil
	}
	if d.hasEntrance && d.hasExit && d.state != StateGenerating {
		d.state = StateGenerated
	}

	return nil
}

// SetEntrance marks (r, c) as the unique entrance tile.
func (d *Dungeon) SetEntrance(r, c int) error { return d.SetTile(r, c, Entrance) }

// SetExit marks (r, c) as the unique exit tile.
func (d *Dungeon) SetExit(r, c int) error { return d.SetTile(r, c, Exit) }

// IsWall reports whether the tile at (r, c) is a wall.
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (d *Dungeon) IsWall(r, c int) (bool, error) {
	t, err := d.tiles.At(r, c)
	if err != nil {
		return false, err
	}

	return t == Wall, nil
}

// IsExit reports whether the tile at (r, c) is the exit.
// Returns grid.ErrOutOfBounds for coordinates outside the grid.
func (d *Dungeon) IsExit(r, c int) (bool, error) {
	t, err := d.tiles.At(r, c)
	if err != nil {
		return false, err
	}

	return t == Exit, nil
}

// Generate runs the selected generation strategy. The base variant
// implements only Naive; every other known method fails with
// ErrUnsupportedMethod and leaves the grid exactly as it was.
func (d *Dungeon) Generate(m Method) error {
	switch m {
	case Naive:
		return d.runGenerate(d.generateNaive)
	case BSP, DrunkenWalk, CellularAutomata, Voronoi, PerlinNoise:
		return fmt.Errorf("%w: %s on base dungeon", ErrUnsupportedMethod, m)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// runGenerate drives one strategy through the generation lifecycle:
// Generating while the strategy mutates tiles, Generated once it returns
// with both endpoints placed. Validation of the preconditions happens
// before any tile is touched, so a failed call never leaves a partial
// mutation behind.
func (d *Dungeon) runGenerate(strategy func()) error {
	// An entrance and an exit must land on two distinct cells.
	if d.Rows()*d.Cols() < 2 {
		return fmt.Errorf("%w: %dx%d grid cannot hold distinct entrance and exit",
			grid.ErrInvalidDimension, d.Rows(), d.Cols())
	}

	d.state = StateGenerating
	d.hot = nil
	strategy()
	d.state = StateGenerated

	return nil
}

// FindPath runs the pathfinder from entrance to exit over walkable tiles
// (every kind except Wall). On success the route is cached for HotPath and
// the model moves to Validated. A missing route is an outcome, not an
// error: FindPath reports false and the caller may regenerate.
// Returns ErrNotGenerated when entrance or exit is not set.
// Complexity: O((R*C) log(R*C)).
func (d *Dungeon) FindPath() (bool, error) {
	if !d.hasEntrance || !d.hasExit {
		return false, ErrNotGenerated
	}

	walkable := func(c grid.Coord) bool {
		t, err := d.tiles.At(c.Row, c.Col)

		return err == nil && t.Walkable()
	}
	found, path, err := pathfind.ShortestPath(d.Rows(), d.Cols(), walkable,
		d.entrance, d.exit, pathfind.WithConnectivity(d.conn))
	if err != nil {
		return false, err
	}
	if !found {
		d.hot = nil

		return false, nil
	}

	d.hot = path
	d.state = StateValidated

	return true, nil
}

// HotPath returns a copy of the cached entrance-to-exit route.
// Returns ErrNotValidated until FindPath has confirmed reachability.
func (d *Dungeon) HotPath() ([]grid.Coord, error) {
	if d.state != StateValidated {
		return nil, ErrNotValidated
	}
	path := make([]grid.Coord, len(d.hot))
	copy(path, d.hot)

	return path, nil
}

// ExportTiles copies the tile grid, preserving row-major order, into dst
// (allocating when dst is too small). This flat buffer is the sole hand-off
// to rendering collaborators.
// Complexity: O(rows*cols).
func (d *Dungeon) ExportTiles(dst []Tile) []Tile {
	return d.tiles.Export(dst)
}

// reset returns the grid to the all-Wall state with no entrance, exit or
// cached path. Every strategy starts from here.
func (d *Dungeon) reset() {
	d.tiles.Fill(Wall)
	d.hasEntrance = false
	d.hasExit = false
	d.hot = nil
}

// setFloor writes a Floor tile without entrance/exit bookkeeping. Strategies
// use it while carving; endpoints are always placed last via SetTile.
func (d *Dungeon) setFloor(r, c int) {
	_ = d.tiles.Set(r, c, Floor)
}

// carveH carves a horizontal floor corridor along row between c1 and c2.
func (d *Dungeon) carveH(row, c1, c2 int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		d.setFloor(row, c)
	}
}

// carveV carves a vertical floor corridor along col between r1 and r2.
func (d *Dungeon) carveV(col, r1, r2 int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		d.setFloor(r, col)
	}
}
