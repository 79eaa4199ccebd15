package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/spdemo/dijkstra"
	"github.com/katalvlaran/spdemo/gridgraph"
)

// ExampleNew finds the cheapest route along a 1×5 corridor where the
// middle cell is expensive but unavoidable.
func ExampleNew() {
	g, _ := gridgraph.NewGridGraph(1, 5)
	mid, _ := g.Cell(0, 2)
	_ = g.SetWeight(mid, 4)

	src, _ := g.Cell(0, 0)
	dst, _ := g.Cell(0, 4)
	w, _ := dijkstra.New(g, src, dst)
	for !w.Finished() {
		w.Step()
	}

	fmt.Printf("found=%v cost=%g path cells=%d\n", w.Found(), w.Cost(), len(w.Path()))
	// Output:
	// found=true cost=7 path cells=5
}
