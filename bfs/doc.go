// Package bfs provides a step-wise breadth-first search over a
// gridgraph.GridGraph, designed to be driven one frame at a time.
//
// What
//
//   - New binds a Walker to a grid, a source cell and a destination cell.
//   - Each Step dequeues exactly one cell, marks it Visited and, unless it
//     is the destination, discovers its NotVisited neighbours in the fixed
//     order of gridgraph.Neighbours.
//   - Finished / Found report the terminal state; Path walks parent links
//     from the destination back to the source.
//   - Hooks at two stages:
//   - OnDiscover (after a neighbour is enqueued)
//   - OnVisit    (after a cell is dequeued and marked Visited)
//
// Why
//
//   - Shortest path by hop count on an unweighted grid in O(V + E).
//   - All state lives in the grid cells, so a renderer can draw every
//     intermediate frame without asking the walker.
//
// Determinism
//
//	Neighbour order is fixed by gridgraph, the queue is FIFO, and the first
//	discovery assigns the parent, so the visit sequence and the reported
//	path are fully reproducible.
//
// Complexity (V = rows×cols, d = 4 or 8)
//
//   - Step:  O(d)
//   - Total: O(V·d) time, O(V) memory for the queue
//
// Usage
//
//	w, err := bfs.New(g, src, dst, bfs.WithDiagonals(true))
//	if err != nil {
//	    // ErrNilGraph, ErrBlockedEndpoint, gridgraph.ErrForeignCell, ...
//	}
//	for !w.Finished() {
//	    w.Step()
//	    // draw g
//	}
//	if w.Found() {
//	    path := w.Path() // destination → source
//	}
//
// Errors
//
//   - ErrNilGraph             if the graph pointer is nil.
//   - ErrBlockedEndpoint      if the source or destination is Blocked.
//   - gridgraph.ErrNilCell / gridgraph.ErrForeignCell for bad endpoints.
//
// "No path" is not an error: Path returns [destination] and Found is false.
package bfs
