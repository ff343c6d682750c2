package dungeon

import "github.com/daedalus-go/daedalus/grid"

// Binary space partitioning bounds. Recursion depth and leaf size cap the
// work per generation, so no external cancellation is needed.
const (
	bspMaxDepth = 6 // maximum partition depth
	bspMinLeaf  = 8 // minimum rows/cols a leaf keeps after a split
	bspMinRoom  = 3 // preferred minimum room extent
)

// bspNode is one rectangle in the partition tree. Internal nodes always
// carry both children; rooms live only on leaves.
type bspNode struct {
	row, col      int
	height, width int
	left, right   *bspNode
	room          *Room
}

// generateBSP recursively partitions the grid into sub-rectangles, carves a
// random room inside each leaf, and joins the two subtrees under every
// internal node with an L-shaped corridor between representative room
// centers. Connecting siblings at every level makes the whole room set
// mutually reachable by induction, so entrance (first room center) and exit
// (last room center) are always connected.
//
// Grids too small to host a leaf room fall back to the Naive layout.
// Complexity: O(rows*cols) carving plus O(2^depth) tree work.
func (d *Dungeon) generateBSP() []Room {
	d.reset()

	// 1) Build the partition tree over the whole grid.
	root := &bspNode{height: d.Rows(), width: d.Cols()}
	d.splitNode(root, 0)

	// 2) Carve one room per leaf, collecting them in tree order.
	var rooms []Room
	d.carveLeafRooms(root, &rooms)

	// 3) Join sibling subtrees bottom-up with corridors.
	d.connectSubtrees(root)

	// 4) Place endpoints in the first and last carved rooms.
	if len(rooms) == 0 {
		d.generateNaive()

		return nil
	}
	entrance := rooms[0].Center()
	exit := rooms[len(rooms)-1].Center()
	if entrance == exit {
		// Single room: span it corner to corner instead.
		last := rooms[len(rooms)-1]
		entrance = grid.Coord{Row: rooms[0].Row, Col: rooms[0].Col}
		exit = grid.Coord{Row: last.Row + last.Height - 1, Col: last.Col + last.Width - 1}
	}
	if entrance == exit {
		// A lone 1x1 room cannot hold both endpoints.
		d.generateNaive()

		return nil
	}
	_ = d.SetEntrance(entrance.Row, entrance.Col)
	_ = d.SetExit(exit.Row, exit.Col)

	return rooms
}

// splitNode recursively splits n into two children. The split direction
// follows the aspect ratio (wide rectangles split vertically, tall ones
// horizontally, near-square ones randomly) and the position leaves at
// least bspMinLeaf on each side.
func (d *Dungeon) splitNode(n *bspNode, depth int) {
	if depth >= bspMaxDepth {
		return
	}

	// Prefer cutting across the long axis.
	var horizontal bool
	switch {
	case float64(n.width) > float64(n.height)*1.25:
		horizontal = false
	case float64(n.height) > float64(n.width)*1.25:
		horizontal = true
	default:
		horizontal = d.rng.Intn(2) == 0
	}

	span := n.width
	if horizontal {
		span = n.height
	}
	if span < 2*bspMinLeaf+1 {
		// Too narrow in the chosen direction; try the other one.
		horizontal = !horizontal
		span = n.width
		if horizontal {
			span = n.height
		}
		if span < 2*bspMinLeaf+1 {
			return
		}
	}

	splitPos := bspMinLeaf + d.rng.Intn(span-2*bspMinLeaf+1)
	if horizontal {
		n.left = &bspNode{row: n.row, col: n.col, height: splitPos, width: n.width}
		n.right = &bspNode{row: n.row + splitPos, col: n.col, height: n.height - splitPos, width: n.width}
	} else {
		n.left = &bspNode{row: n.row, col: n.col, height: n.height, width: splitPos}
		n.right = &bspNode{row: n.row, col: n.col + splitPos, height: n.height, width: n.width - splitPos}
	}

	d.splitNode(n.left, depth+1)
	d.splitNode(n.right, depth+1)
}

// carveLeafRooms walks the tree in order and carves a random room inside
// every leaf rectangle, appending each to rooms.
func (d *Dungeon) carveLeafRooms(n *bspNode, rooms *[]Room) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		if room, ok := d.carveRoomIn(n); ok {
			n.room = &room
			*rooms = append(*rooms, room)
		}

		return
	}
	d.carveLeafRooms(n.left, rooms)
	d.carveLeafRooms(n.right, rooms)
}

// carveRoomIn carves a random room inside leaf n, keeping a one-cell wall
// margin so rooms from adjacent leaves never fuse. Reports false when the
// leaf interior cannot hold even a single cell.
func (d *Dungeon) carveRoomIn(n *bspNode) (Room, bool) {
	maxH, maxW := n.height-2, n.width-2
	if maxH < 1 || maxW < 1 {
		return Room{}, false
	}
	h := d.roomExtent(maxH)
	w := d.roomExtent(maxW)
	rOff := 1 + d.rng.Intn(maxH-h+1)
	cOff := 1 + d.rng.Intn(maxW-w+1)

	room := Room{Row: n.row + rOff, Col: n.col + cOff, Height: h, Width: w}
	for r := room.Row; r < room.Row+room.Height; r++ {
		for c := room.Col; c < room.Col+room.Width; c++ {
			d.setFloor(r, c)
		}
	}

	return room, true
}

// roomExtent picks a random room dimension between bspMinRoom (shrunk when
// the leaf is smaller) and max, inclusive.
func (d *Dungeon) roomExtent(max int) int {
	min := bspMinRoom
	if max < min {
		min = max
	}

	return min + d.rng.Intn(max-min+1)
}

// connectSubtrees joins the two children of every internal node with an
// L-shaped corridor between the centers of a representative room from each
// side. Children are connected internally first (post-order), so a single
// corridor per node suffices for full connectivity.
func (d *Dungeon) connectSubtrees(n *bspNode) {
	if n == nil || n.left == nil || n.right == nil {
		return
	}
	d.connectSubtrees(n.left)
	d.connectSubtrees(n.right)

	a, b := firstRoom(n.left), firstRoom(n.right)
	if a == nil || b == nil {
		return
	}
	ac, bc := a.Center(), b.Center()
	d.carveH(ac.Row, ac.Col, bc.Col)
	d.carveV(bc.Col, ac.Row, bc.Row)
}

// firstRoom returns the first room found in n's subtree, in tree order.
func firstRoom(n *bspNode) *Room {
	if n == nil {
		return nil
	}
	if n.room != nil {
		return n.room
	}
	if r := firstRoom(n.left); r != nil {
		return r
	}

	return firstRoom(n.right)
}
