package pathfind

// cellItem represents a grid cell and its tentative distance from the start.
// It is stored in the priority queue to order cells by increasing distance.
type cellItem struct {
	idx  int // row-major cell index
	dist int // accumulated distance from start
}

// cellPQ is a min-heap (priority queue) of *cellItem, ordered by dist
// ascending. It follows the lazy-decrease-key approach: when a shorter
// distance to a cell is found, a new entry is pushed and the stale one is
// discarded when popped (checked via the runner's visited array).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist means higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
