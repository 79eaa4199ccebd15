// Package astar provides a step-wise A* search over a gridgraph.GridGraph,
// designed to be driven one frame at a time.
//
// What
//
//   - New binds a Walker to a grid, a source cell and a destination cell.
//   - Each Step pops exactly one frontier cell, marks it Visited and, unless
//     it is the destination, relaxes its neighbours.
//   - Entering a cell costs that cell's weight; the source is free.
//   - Cost reports the accumulated weight of the destination.
//
// Frontier
//
//	An indexed binary heap keyed by exact+estimate. Equal keys pop in
//	insertion order, and a relaxed cell keeps its original insertion
//	sequence, so a run is fully reproducible. Relaxation repairs the heap
//	with heap.Fix on the stored position (decrease-key).
//
// Heuristic
//
//	estimate = HeuristicFactor × baseline × distance(cell, destination)
//
//	distance is Manhattan without diagonals and Chebyshev with diagonals.
//	Every move enters a cell whose weight is at least the baseline, so the
//	estimate is admissible and consistent and the reported path cost
//	equals the one found by Dijkstra's algorithm.
//
// Options
//
//   - WithDiagonals(bool)  8-neighbourhood instead of 4.
//   - WithHeuristic(bool)  disable the estimate (Dijkstra).
//   - WithOnDiscover / WithOnVisit / WithOnRelax  observation hooks.
//
// Complexity (V = rows×cols, d = 4 or 8)
//
//   - Step:  O(d log V)
//   - Total: O(V·d log V) time, O(V) memory
//
// Errors
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrBlockedEndpoint  if the source or destination is Blocked.
//   - gridgraph.ErrNilCell / gridgraph.ErrForeignCell for bad endpoints.
//
// "No path" is not an error: Path returns [destination] and Found is false.
package astar
