// Package bfs provides a breadth-first walker over a gridgraph.GridGraph
// that advances one dequeued cell per Step call.
//
// Cell weights are ignored: the reported path is shortest by hop count.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/spdemo/gridgraph"
)

// Walker encapsulates mutable BFS state. It references, but does not own,
// the graph and both endpoint cells.
type Walker struct {
	graph    *gridgraph.GridGraph
	src      *gridgraph.Cell
	dst      *gridgraph.Cell
	opts     BFSOptions
	queue    []*gridgraph.Cell
	steps    int
	finished bool
	found    bool
}

// New binds a walker to g, src and dst and seeds the queue with src.
// Returns ErrNilGraph for a nil graph, gridgraph.ErrNilCell or
// gridgraph.ErrForeignCell for endpoints not owned by g, and
// ErrBlockedEndpoint if either endpoint is Blocked.
func New(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, c := range []*gridgraph.Cell{src, dst} {
		if err := g.Validate(c); err != nil {
			return nil, fmt.Errorf("bfs: invalid endpoint: %w", err)
		}
		if c.Status() == gridgraph.Blocked {
			return nil, fmt.Errorf("%w: %s", ErrBlockedEndpoint, c)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Walker{
		graph: g,
		src:   src,
		dst:   dst,
		opts:  o,
		queue: make([]*gridgraph.Cell, 0, g.Size()),
	}
	w.queue = append(w.queue, src)

	return w, nil
}

// Finished reports whether the search reached its terminal state.
func (w *Walker) Finished() bool { return w.finished }

// Found reports whether the destination was dequeued.
func (w *Walker) Found() bool { return w.found }

// Steps returns the number of cells dequeued so far.
func (w *Walker) Steps() int { return w.steps }

// Frontier returns the number of queued cells.
func (w *Walker) Frontier() int { return len(w.queue) }

// Step dequeues one cell and marks it Visited. Dequeuing the destination
// finishes the search without expanding it; otherwise every NotVisited
// neighbour is Discovered, linked to the current cell and enqueued.
// A dequeued cell that was Blocked in the meantime is dropped without
// expansion. An empty queue finishes the search with no path. After
// Finished, Step is a no-op.
func (w *Walker) Step() {
	if w.finished {
		return
	}
	if len(w.queue) == 0 {
		w.finished = true
		return
	}

	cur := w.dequeue()
	w.steps++
	if !cur.Visit() {
		// Blocked after it was queued; it is neither expanded nor a target.
		return
	}
	w.opts.OnVisit(cur)
	if cur == w.dst {
		w.finished = true
		w.found = true
		return
	}

	for _, n := range w.graph.Neighbours(cur, w.opts.Diagonals) {
		if n.Discover(cur) {
			w.queue = append(w.queue, n)
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

// dequeue pops the first queued cell.
func (w *Walker) dequeue() *gridgraph.Cell {
	cur := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]

	return cur
}
