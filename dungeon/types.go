// Package dungeon defines core types, options, and sentinel errors for the
// dungeon subpackage of github.com/daedalus-go/daedalus.
package dungeon

import (
	"errors"
	"fmt"

	"github.com/daedalus-go/daedalus/grid"
	"github.com/daedalus-go/daedalus/pathfind"
)

// Sentinel errors for dungeon operations.
var (
	// ErrUnsupportedMethod indicates a generation method the dungeon variant
	// does not implement. The grid is left untouched.
	ErrUnsupportedMethod = errors.New("dungeon: generation method not supported by this variant")
	// ErrUnknownMethod indicates a method value outside the enumeration.
	ErrUnknownMethod = errors.New("dungeon: unknown generation method")
	// ErrNotGenerated indicates FindPath was called before a generator (or a
	// caller) set both an entrance and an exit.
	ErrNotGenerated = errors.New("dungeon: entrance and exit not set")
	// ErrNotValidated indicates HotPath was called before FindPath confirmed
	// entrance-to-exit reachability.
	ErrNotValidated = errors.New("dungeon: path not validated, call FindPath first")
)

// Tile is one cell's classification. The numeric values match the export
// encoding consumed by rendering collaborators.
type Tile uint8

const (
	// Wall is an impassable tile; the pathfinder never enters it.
	Wall Tile = iota
	// Floor is an open, walkable tile.
	Floor
	// Entrance marks the single entry tile of the dungeon.
	Entrance
	// Exit marks the single exit tile of the dungeon.
	Exit
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Entrance:
		return "Entrance"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Walkable reports whether the pathfinder may traverse the tile.
func (t Tile) Walkable() bool { return t != Wall }

// Method is a closed enumeration selecting which generation strategy runs.
// Not every method is valid for every dungeon variant: the base Dungeon
// supports only Naive, while Rogue supports all six.
type Method int

const (
	// Naive fills the grid with a trivial all-floor layout.
	Naive Method = iota
	// BSP partitions the grid recursively and carves connected rooms.
	BSP
	// DrunkenWalk carves floor along a biased random walk.
	DrunkenWalk
	// CellularAutomata smooths random noise into organic caves.
	CellularAutomata
	// Voronoi carves nearest-site regions separated by wall ridges.
	Voronoi
	// PerlinNoise thresholds a coherent noise field into terrain.
	PerlinNoise
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Naive:
		return "Naive"
	case BSP:
		return "BSP"
	case DrunkenWalk:
		return "DrunkenWalk"
	case CellularAutomata:
		return "CellularAutomata"
	case Voronoi:
		return "Voronoi"
	case PerlinNoise:
		return "PerlinNoise"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// State tracks the generation lifecycle of a model.
type State int

const (
	// StateUninitialized is the all-Wall grid before any generation.
	StateUninitialized State = iota
	// StateGenerating means a strategy is currently mutating tiles.
	StateGenerating
	// StateGenerated means exactly one entrance and one exit are set.
	StateGenerated
	// StateValidated means the pathfinder has confirmed reachability.
	StateValidated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateGenerating:
		return "Generating"
	case StateGenerated:
		return "Generated"
	case StateValidated:
		return "Validated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Room is an axis-aligned rectangle of floor tiles carved by the BSP
// strategy or placed directly on a Rogue dungeon.
type Room struct {
	Row, Col      int // top-left corner
	Height, Width int // extents, always positive
}

// Center returns the coordinate at the middle of the room.
func (r Room) Center() grid.Coord {
	return grid.Coord{Row: r.Row + r.Height/2, Col: r.Col + r.Width/2}
}

// Model is the capability set shared by every dungeon variant: tile
// queries, mutation, generation, path validation and export. One level of
// interface plus concrete variants; no deeper hierarchy.
type Model interface {
	Rows() int
	Cols() int
	TileAt(r, c int) (Tile, error)
	SetTile(r, c int, t Tile) error
	Generate(m Method) error
	FindPath() (bool, error)
	HotPath() ([]grid.Coord, error)
	ExportTiles(dst []Tile) []Tile
}

// Options configures dungeon construction.
//
// Seed - RNG seed; a time-derived value is used when unset, and is stored
// so the layout stays reproducible.
// Conn - neighbor connectivity used by FindPath.
type Options struct {
	Seed    int64
	seedSet bool
	Conn    pathfind.Connectivity
}

// Option represents a functional option for configuring a dungeon.
type Option func(*Options)

// WithSeed fixes the random seed so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seedSet = true
	}
}

// WithConnectivity selects 4- or 8-directional movement for FindPath.
// Generation strategies always carve with 4-connectivity.
func WithConnectivity(c pathfind.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns an Options struct with defaults: unset seed
// (resolved to a time-derived value at construction) and Conn4 movement.
func DefaultOptions() Options {
	return Options{Conn: pathfind.Conn4}
}
