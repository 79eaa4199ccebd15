// Package spdemo is an incremental shortest-path engine for editable grids,
// with a terminal demonstrator on top.
//
// 🚀 What is spdemo?
//
//	A small set of packages that search a grid one expanded cell at a time,
//	so every intermediate frame of a search can be drawn:
//		• Grid: walls, per-cell weights, cell status and parent links
//		• Walkers: A* (admissible heuristic), Dijkstra, breadth-first search
//		• Editor helpers: perfect-maze carving, minimum wall breach
//		• Demonstrator: interactive TUI and a headless solve command
//
// ✨ Why step-wise?
//
//   - A Step does a bounded amount of work, so a renderer controls the pace
//   - All search state lives in the cells, so drawing needs no walker access
//   - Neighbour order and tie-breaks are fixed, so runs are reproducible
//
// Packages:
//
//	gridgraph/   the grid, its cells and the editor API
//	bfs/         breadth-first walker (hop count, weights ignored)
//	astar/       A* walker with an indexed frontier and relaxation
//	dijkstra/    A* with the heuristic switched off
//	walker/      the Walker interface, name registry and Run driver
//	maze/        Wilson's algorithm over the even-coordinate lattice
//	internal/    session state, terminal UI and the cobra CLI
//
// Quick start:
//
//	g, _ := gridgraph.NewGridGraph(20, 40)
//	src, _ := g.Cell(0, 0)
//	dst, _ := g.Cell(19, 39)
//	w, _ := walker.New(walker.AStar, g, src, dst, true)
//	for !w.Finished() {
//		w.Step() // draw g here
//	}
//	path := w.Path() // destination → source
//
// See cmd/spdemo for the demonstrator: `spdemo run 20x40` or
// `spdemo solve 20x40 --algorithm all --maze`.
package spdemo
