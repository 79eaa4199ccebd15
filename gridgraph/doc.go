// Package gridgraph treats a rectangular grid of cells as the graph that
// incremental shortest-path walkers explore.
//
// What:
//
//   - GridGraph owns rows×cols Cells in a row-major arena with fixed shape.
//   - Each Cell carries a Status (NotVisited, Discovered, Visited, Blocked),
//     a Weight (>= the baseline) and a parent link stored as an index.
//   - Neighbours enumerates open neighbours in a fixed 4- or 8-direction order.
//   - Cells yields every cell lazily in row-major order.
//   - SetBlocked / SetWeight / ResetWeight form the editor API; Reset clears
//     a finished or cancelled run (optionally keeping walls and weights).
//   - TracePath rebuilds a walker's result from parent links.
//   - Regions / Reachable analyse open connectivity; Breach computes the
//     fewest walls to remove to connect two cells (0-1 BFS).
//
// Why:
//
//   - Walkers mutate cell state step by step, so a renderer can draw every
//     intermediate frame straight from the grid.
//   - Index-based parent links survive resets without dangling references.
//
// Complexity:
//
//   - NewGridGraph, Reset, Regions, Breach: O(W×H×d) at most, Memory: O(W×H).
//   - Cell, CellAt, Neighbours:            O(1) / O(d).
//
// Options:
//
//   - WithBaselineWeight(w): default cell weight (w >= 1, default 1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols not positive.
//   - ErrOutOfRange:        lookup outside [0,rows)×[0,cols).
//   - ErrInvalidWeight:     baseline below 1 or weight below baseline.
//   - ErrNilCell:           nil cell passed to the editor API.
//   - ErrForeignCell:       cell belongs to another grid.
//
// Concurrency:
//
//	GridGraph is not safe for concurrent use. A driver edits it only while
//	no walker is active; the active walker is the only other writer.
package gridgraph
