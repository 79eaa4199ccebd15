package astar

// entry is a frontier cell in the priority queue.
type entry struct {
	idx int     // row-major cell index
	key float64 // exact + estimate
	seq int     // insertion order, kept across decrease-key
	pos int     // position inside the heap, maintained by Swap
}

// frontier is an indexed min-heap of *entry ordered by key and then by
// insertion sequence. The position index lets a decrease-key be repaired
// with heap.Fix instead of re-heapifying the whole queue.
type frontier []*entry

// Len returns the number of queued entries.
func (pq frontier) Len() int { return len(pq) }

// Less orders by key ascending; equal keys pop first-in first-out.
func (pq frontier) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries and keeps their positions current.
func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].pos = i
	pq[j].pos = j
}

// Push appends x, which must be an *entry. Called by heap.Push.
func (pq *frontier) Push(x any) {
	e := x.(*entry)
	e.pos = len(*pq)
	*pq = append(*pq, e)
}

// Pop removes the last entry. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.pos = -1
	*pq = old[:n-1]

	return e
}
