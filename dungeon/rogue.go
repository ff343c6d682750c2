package dungeon

import (
	"fmt"

	"github.com/daedalus-go/daedalus/grid"
)

// Rogue is the roguelike-specialized dungeon variant. It supports every
// generation method and keeps the list of rooms its BSP layouts carve, so
// game logic can spawn content per room.
type Rogue struct {
	*Dungeon
	rooms []Room
}

// NewRogue constructs a rows x cols Rogue dungeon. Construction semantics
// match New: all cells Wall, entrance and exit unset, stored seed.
func NewRogue(rows, cols int, opts ...Option) (*Rogue, error) {
	d, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return &Rogue{Dungeon: d}, nil
}

// Rooms returns a copy of the rooms carved by the most recent BSP
// generation or placed via PlaceRoom.
func (rd *Rogue) Rooms() []Room {
	rooms := make([]Room, len(rd.rooms))
	copy(rooms, rd.rooms)

	return rooms
}

// PlaceRoom carves a rectangular floor room spanning from and to inclusive.
// It reports false, touching nothing, when the rectangle is degenerate or
// reaches outside the grid.
func (rd *Rogue) PlaceRoom(from, to grid.Coord) bool {
	if from.Row > to.Row || from.Col > to.Col {
		return false
	}
	if !rd.tiles.InBounds(from.Row, from.Col) || !rd.tiles.InBounds(to.Row, to.Col) {
		return false
	}

	for r := from.Row; r <= to.Row; r++ {
		for c := from.Col; c <= to.Col; c++ {
			rd.setFloor(r, c)
		}
	}
	rd.rooms = append(rd.rooms, Room{
		Row:    from.Row,
		Col:    from.Col,
		Height: to.Row - from.Row + 1,
		Width:  to.Col - from.Col + 1,
	})

	return true
}

// Generate runs the selected generation strategy. Rogue implements the full
// method enumeration.
func (rd *Rogue) Generate(m Method) error {
	switch m {
	case Naive:
		return rd.runGenerate(func() {
			rd.rooms = nil
			rd.generateNaive()
		})
	case BSP:
		return rd.runGenerate(func() {
			rd.rooms = rd.generateBSP()
		})
	case DrunkenWalk:
		return rd.runGenerate(func() {
			rd.rooms = nil
			rd.generateDrunkenWalk()
		})
	case CellularAutomata:
		return rd.runGenerate(func() {
			rd.rooms = nil
			rd.generateCellularAutomata()
		})
	case Voronoi:
		return rd.runGenerate(func() {
			rd.rooms = nil
			rd.generateVoronoi()
		})
	case PerlinNoise:
		return rd.runGenerate(func() {
			rd.rooms = nil
			rd.generatePerlinNoise()
		})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
