// Package dijkstra provides Dijkstra's algorithm as a step-wise walker over
// a gridgraph.GridGraph.
//
// Overview:
//
//   - There is no independent search logic here. New configures an
//     astar.Walker with a zero estimate, so the frontier is ordered by
//     accumulated cost alone (ties first-in first-out).
//   - The walker expands cells in rings of equal cost around the source,
//     which makes the frontier visibly grow in every direction, in contrast
//     with the goal-directed growth of A*.
//
// Guarantees:
//
//   - Cost equals the minimum total weight of the cells entered between
//     source and destination (source excluded).
//   - On the same grid, A* and Dijkstra report the same Cost, though their
//     paths may differ when several cheapest paths exist.
//
// Complexity:
//
//   - Step:  O(d log V), d = 4 or 8
//   - Total: O(V·d log V) time, O(V) memory
//
// Example usage:
//
//	w, err := dijkstra.New(g, src, dst, dijkstra.WithDiagonals(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for !w.Finished() {
//	    w.Step()
//	}
//	fmt.Println(w.Found(), w.Cost())
package dijkstra
