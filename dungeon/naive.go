package dungeon

// generateNaive fills the grid with the trivial placeholder layout: every
// cell Floor, entrance in the top-left corner (0,0) and exit in the
// bottom-right corner (rows-1, cols-1). The result is independent of the
// seed, exists for every variant, and guarantees a straight-line solvable
// dungeon: the shortest path spans exactly the Manhattan distance between
// the corners.
// Complexity: O(rows*cols).
func (d *Dungeon) generateNaive() {
	d.reset()
	d.tiles.Fill(Floor)
	_ = d.SetEntrance(0, 0)
	_ = d.SetExit(d.Rows()-1, d.Cols()-1)
}
