package dungeon_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daedalus-go/daedalus/dungeon"
	"github.com/daedalus-go/daedalus/grid"
	"github.com/daedalus-go/daedalus/pathfind"
)

// countTiles tallies each tile kind in the model's export.
func countTiles(t *testing.T, m dungeon.Model) map[dungeon.Tile]int {
	t.Helper()
	counts := make(map[dungeon.Tile]int)
	for _, tile := range m.ExportTiles(nil) {
		counts[tile]++
	}

	return counts
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Defaults verifies the freshly constructed model: every cell Wall,
// no entrance or exit, Uninitialized state, stored seed.
func TestNew_Defaults(t *testing.T) {
	d, err := dungeon.New(4, 6, dungeon.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 4, d.Rows())
	require.Equal(t, 6, d.Cols())
	require.Equal(t, int64(7), d.Seed())
	require.Equal(t, dungeon.StateUninitialized, d.State())

	if _, ok := d.Entrance(); ok {
		t.Error("fresh model has an entrance set")
	}
	if _, ok := d.Exit(); ok {
		t.Error("fresh model has an exit set")
	}

	counts := countTiles(t, d)
	require.Equal(t, 24, counts[dungeon.Wall])
	require.Len(t, counts, 1)
}

// TestNew_InvalidDimension rejects non-positive dimensions on both variants.
func TestNew_InvalidDimension(t *testing.T) {
	for _, rc := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-3, 2}} {
		_, err := dungeon.New(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrInvalidDimension, "New(%d,%d)", rc[0], rc[1])
		_, err = dungeon.NewRogue(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrInvalidDimension, "NewRogue(%d,%d)", rc[0], rc[1])
	}
}

//----------------------------------------------------------------------------//
// Accessor and Mutator Tests
//----------------------------------------------------------------------------//

// TestAccessors_OutOfBounds verifies every coordinate surface rejects
// out-of-range input.
func TestAccessors_OutOfBounds(t *testing.T) {
	d, err := dungeon.New(3, 3, dungeon.WithSeed(1))
	require.NoError(t, err)

	bad := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {9, 9}}
	for _, rc := range bad {
		_, err := d.TileAt(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "TileAt(%d,%d)", rc[0], rc[1])

		err = d.SetTile(rc[0], rc[1], dungeon.Floor)
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "SetTile(%d,%d)", rc[0], rc[1])

		_, err = d.IsWall(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "IsWall(%d,%d)", rc[0], rc[1])

		_, err = d.IsExit(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "IsExit(%d,%d)", rc[0], rc[1])

		err = d.SetEntrance(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "SetEntrance(%d,%d)", rc[0], rc[1])

		err = d.SetExit(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "SetExit(%d,%d)", rc[0], rc[1])
	}
}

// TestSetEntrance_Unique moves the entrance twice and requires exactly one
// Entrance-tagged cell to remain, with the old cell reset to Floor.
func TestSetEntrance_Unique(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, d.SetEntrance(1, 1))
	require.NoError(t, d.SetEntrance(3, 3))

	counts := countTiles(t, d)
	require.Equal(t, 1, counts[dungeon.Entrance])

	old, err := d.TileAt(1, 1)
	require.NoError(t, err)
	require.Equal(t, dungeon.Floor, old)

	at, ok := d.Entrance()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 3, Col: 3}, at)
}

// TestSetExit_Unique mirrors the entrance invariant for the exit.
func TestSetExit_Unique(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, d.SetExit(0, 4))
	require.NoError(t, d.SetExit(4, 0))

	counts := countTiles(t, d)
	require.Equal(t, 1, counts[dungeon.Exit])

	isExit, err := d.IsExit(4, 0)
	require.NoError(t, err)
	require.True(t, isExit)
}

// TestSetTile_ClearsStaleEndpoint: overwriting the entrance cell with
// another kind must clear the stored entrance coordinate.
func TestSetTile_ClearsStaleEndpoint(t *testing.T) {
	d, err := dungeon.New(4, 4, dungeon.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, d.SetEntrance(2, 2))
	require.NoError(t, d.SetTile(2, 2, dungeon.Floor))

	_, ok := d.Entrance()
	require.False(t, ok, "entrance coordinate must not outlive its tile")
}

// TestSetExit_OverEntrance: claiming the entrance cell for the exit leaves
// only the exit behind.
func TestSetExit_OverEntrance(t *testing.T) {
	d, err := dungeon.New(4, 4, dungeon.WithSeed(1))
	require.NoError(t, err)

	require.NoError(t, d.SetEntrance(1, 1))
	require.NoError(t, d.SetExit(1, 1))

	_, hasEntrance := d.Entrance()
	require.False(t, hasEntrance)
	at, hasExit := d.Exit()
	require.True(t, hasExit)
	require.Equal(t, grid.Coord{Row: 1, Col: 1}, at)

	counts := countTiles(t, d)
	require.Zero(t, counts[dungeon.Entrance])
	require.Equal(t, 1, counts[dungeon.Exit])
}

//----------------------------------------------------------------------------//
// Generation Dispatch Tests
//----------------------------------------------------------------------------//

// TestGenerate_UnsupportedOnBase requires the base variant to reject every
// non-Naive method and to leave the grid byte-identical.
func TestGenerate_UnsupportedOnBase(t *testing.T) {
	d, err := dungeon.New(10, 10, dungeon.WithSeed(42))
	require.NoError(t, err)
	before := d.ExportTiles(nil)

	for _, m := range []dungeon.Method{
		dungeon.BSP, dungeon.DrunkenWalk, dungeon.CellularAutomata,
		dungeon.Voronoi, dungeon.PerlinNoise,
	} {
		err := d.Generate(m)
		require.ErrorIs(t, err, dungeon.ErrUnsupportedMethod, "method %s", m)
	}

	require.Equal(t, before, d.ExportTiles(nil), "failed generation must not mutate the grid")
	require.Equal(t, dungeon.StateUninitialized, d.State())
}

// TestGenerate_UnknownMethod rejects values outside the enumeration on
// both variants.
func TestGenerate_UnknownMethod(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)
	require.ErrorIs(t, d.Generate(dungeon.Method(99)), dungeon.ErrUnknownMethod)

	rd, err := dungeon.NewRogue(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)
	require.ErrorIs(t, rd.Generate(dungeon.Method(-1)), dungeon.ErrUnknownMethod)
}

// TestGenerate_TooSmall: a 1x1 grid cannot hold distinct endpoints.
func TestGenerate_TooSmall(t *testing.T) {
	d, err := dungeon.New(1, 1, dungeon.WithSeed(1))
	require.NoError(t, err)
	require.ErrorIs(t, d.Generate(dungeon.Naive), grid.ErrInvalidDimension)
}

//----------------------------------------------------------------------------//
// Naive Scenario and Lifecycle Tests
//----------------------------------------------------------------------------//

// TestNaive_Scenario pins the documented example: 10x10, seed 42, Naive.
// Entrance at the top-left corner, exit at the opposite corner, and a
// shortest path of exactly the Manhattan distance (18 moves).
func TestNaive_Scenario(t *testing.T) {
	d, err := dungeon.New(10, 10, dungeon.WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, d.Generate(dungeon.Naive))
	require.Equal(t, dungeon.StateGenerated, d.State())

	entrance, ok := d.Entrance()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 0, Col: 0}, entrance)
	exit, ok := d.Exit()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 9, Col: 9}, exit)

	counts := countTiles(t, d)
	require.Equal(t, 98, counts[dungeon.Floor])
	require.Equal(t, 1, counts[dungeon.Entrance])
	require.Equal(t, 1, counts[dungeon.Exit])
	require.Zero(t, counts[dungeon.Wall])

	found, err := d.FindPath()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, dungeon.StateValidated, d.State())

	path, err := d.HotPath()
	require.NoError(t, err)
	require.Len(t, path, 19) // 18 unit moves
	require.Equal(t, entrance, path[0])
	require.Equal(t, exit, path[len(path)-1])
}

// TestFindPath_LifecycleErrors covers the lifecycle gates around FindPath
// and HotPath.
func TestFindPath_LifecycleErrors(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)

	_, err = d.FindPath()
	require.ErrorIs(t, err, dungeon.ErrNotGenerated)

	_, err = d.HotPath()
	require.ErrorIs(t, err, dungeon.ErrNotValidated)
}

// TestFindPath_WallColumn hand-builds the canonical unreachable layout: a
// solid wall column at column 2 with entrance and exit on opposite sides.
func TestFindPath_WallColumn(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)

	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if c != 2 {
				require.NoError(t, d.SetTile(r, c, dungeon.Floor))
			}
		}
	}
	require.NoError(t, d.SetEntrance(2, 0))
	require.NoError(t, d.SetExit(2, 4))

	found, err := d.FindPath()
	require.NoError(t, err)
	require.False(t, found)

	_, err = d.HotPath()
	require.ErrorIs(t, err, dungeon.ErrNotValidated)
}

// TestSetTile_InvalidatesHotPath: mutating a validated model demotes it and
// drops the cached route.
func TestSetTile_InvalidatesHotPath(t *testing.T) {
	d, err := dungeon.New(4, 4, dungeon.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, d.Generate(dungeon.Naive))

	found, err := d.FindPath()
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, d.SetTile(1, 1, dungeon.Wall))
	require.Equal(t, dungeon.StateGenerated, d.State())
	_, err = d.HotPath()
	require.ErrorIs(t, err, dungeon.ErrNotValidated)
}

// TestFindPath_Conn8 routes diagonally when the model was built with
// 8-connectivity.
func TestFindPath_Conn8(t *testing.T) {
	d, err := dungeon.New(3, 3,
		dungeon.WithSeed(1),
		dungeon.WithConnectivity(pathfind.Conn8))
	require.NoError(t, err)
	require.NoError(t, d.Generate(dungeon.Naive))

	found, err := d.FindPath()
	require.NoError(t, err)
	require.True(t, found)

	path, err := d.HotPath()
	require.NoError(t, err)
	require.Len(t, path, 3) // two diagonal hops across the open 3x3 grid
}

// TestHotPath_ReturnsCopy ensures callers cannot corrupt the cache.
func TestHotPath_ReturnsCopy(t *testing.T) {
	d, err := dungeon.New(3, 3, dungeon.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, d.Generate(dungeon.Naive))
	_, err = d.FindPath()
	require.NoError(t, err)

	first, err := d.HotPath()
	require.NoError(t, err)
	first[0] = grid.Coord{Row: 99, Col: 99}

	again, err := d.HotPath()
	require.NoError(t, err)
	require.NotEqual(t, first[0], again[0])
}

// TestErrors_Wrapping spot-checks that sentinel errors survive wrapping.
func TestErrors_Wrapping(t *testing.T) {
	d, err := dungeon.New(5, 5, dungeon.WithSeed(1))
	require.NoError(t, err)

	genErr := d.Generate(dungeon.Voronoi)
	require.True(t, errors.Is(genErr, dungeon.ErrUnsupportedMethod))
	require.Contains(t, genErr.Error(), "Voronoi")
}
