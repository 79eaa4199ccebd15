// Package astar implements a best-first walker over a gridgraph.GridGraph
// that advances one popped cell per Step call.
//
// The frontier is keyed by exact cost so far plus a scaled distance
// estimate to the destination. Disabling the estimate yields Dijkstra's
// algorithm (see package dijkstra).
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spdemo/gridgraph"
)

// Walker holds the mutable A* state. It references, but does not own, the
// graph and both endpoint cells. Per-cell bookkeeping is indexed by the
// cell's row-major index.
type Walker struct {
	graph *gridgraph.GridGraph
	src   *gridgraph.Cell
	dst   *gridgraph.Cell
	opts  Options

	open    frontier
	entries []*entry  // cell index → queued entry, nil when not queued
	exact   []float64 // cell index → cheapest known cost from the source
	est     []float64 // cell index → estimate to the destination
	seq     int

	steps    int
	finished bool
	found    bool
}

// New binds a walker to g, src and dst and pushes src with cost 0.
// Returns ErrNilGraph for a nil graph, gridgraph.ErrNilCell or
// gridgraph.ErrForeignCell for endpoints not owned by g, and
// ErrBlockedEndpoint if either endpoint is Blocked.
//
// Complexity: O(V) memory for the per-cell tables.
func New(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, c := range []*gridgraph.Cell{src, dst} {
		if err := g.Validate(c); err != nil {
			return nil, fmt.Errorf("astar: invalid endpoint: %w", err)
		}
		if c.Status() == gridgraph.Blocked {
			return nil, fmt.Errorf("%w: %s", ErrBlockedEndpoint, c)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	w := &Walker{
		graph:   g,
		src:     src,
		dst:     dst,
		opts:    o,
		open:    make(frontier, 0, n),
		entries: make([]*entry, n),
		exact:   make([]float64, n),
		est:     make([]float64, n),
	}
	heap.Init(&w.open)
	w.est[src.Index()] = w.heuristic(src)
	w.push(src)

	return w, nil
}

// Finished reports whether the search reached its terminal state.
func (w *Walker) Finished() bool { return w.finished }

// Found reports whether the destination was popped.
func (w *Walker) Found() bool { return w.found }

// Steps returns the number of cells popped so far.
func (w *Walker) Steps() int { return w.steps }

// Frontier returns the number of queued cells.
func (w *Walker) Frontier() int { return w.open.Len() }

// Cost returns the accumulated weight of the destination, the source's own
// weight excluded. Only meaningful when Found is true.
func (w *Walker) Cost() float64 { return w.exact[w.dst.Index()] }

// Step pops the cheapest frontier cell and marks it Visited. Popping the
// destination finishes the search without expanding it. Otherwise each
// neighbour is relaxed:
//
//   - Discovered and reachable more cheaply: exact cost and parent are
//     updated and the heap position is repaired in place.
//   - NotVisited: exact cost and estimate are set, the cell is Discovered
//     and pushed.
//   - Visited: ignored.
//
// A popped cell that was Blocked in the meantime is dropped without
// expansion. An empty frontier finishes the search with no path. After Finished, Step
// is a no-op.
//
// Complexity: O(d log V), d = 4 or 8.
func (w *Walker) Step() {
	if w.finished {
		return
	}
	if w.open.Len() == 0 {
		w.finished = true
		return
	}

	e := heap.Pop(&w.open).(*entry)
	w.entries[e.idx] = nil
	cur, _ := w.graph.CellAt(e.idx)
	w.steps++
	if !cur.Visit() {
		// Blocked after it was pushed; it is neither expanded nor a target.
		return
	}
	w.opts.OnVisit(cur)
	if cur == w.dst {
		w.finished = true
		w.found = true
		return
	}

	base := w.exact[e.idx]
	for _, n := range w.graph.Neighbours(cur, w.opts.Diagonals) {
		ni := n.Index()
		tentative := base + n.Weight()
		switch n.Status() {
		case gridgraph.Discovered:
			if tentative >= w.exact[ni] {
				continue
			}
			w.exact[ni] = tentative
			n.Relink(cur)
			if q := w.entries[ni]; q != nil {
				q.key = tentative + w.est[ni]
				heap.Fix(&w.open, q.pos)
			}
			w.opts.OnRelax(n)
		case gridgraph.NotVisited:
			w.exact[ni] = tentative
			w.est[ni] = w.heuristic(n)
			n.Discover(cur)
			w.push(n)
			w.opts.OnDiscover(n)
		}
	}
}

// Path returns the cells from the destination back to the source.
// If the destination was never reached the result is exactly
// [destination]; use Found to tell that apart from a search whose source
// is its destination.
func (w *Walker) Path() []*gridgraph.Cell {
	return w.graph.TracePath(w.dst)
}

// push queues c with its current key and the next insertion sequence.
func (w *Walker) push(c *gridgraph.Cell) {
	i := c.Index()
	e := &entry{idx: i, key: w.exact[i] + w.est[i], seq: w.seq}
	w.seq++
	w.entries[i] = e
	heap.Push(&w.open, e)
}

// heuristic estimates the remaining cost from c to the destination as
// HeuristicFactor × baseline × distance. Distance is Manhattan for the
// 4-neighbourhood and Chebyshev for the 8-neighbourhood, the minimum hop
// count in each case, so the estimate never exceeds the true cost.
func (w *Walker) heuristic(c *gridgraph.Cell) float64 {
	if !w.opts.Heuristic {
		return 0
	}
	dr := abs(c.Row() - w.dst.Row())
	dc := abs(c.Col() - w.dst.Col())
	d := dr + dc
	if w.opts.Diagonals {
		d = max(dr, dc)
	}

	return HeuristicFactor * w.graph.BaselineWeight() * float64(d)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
