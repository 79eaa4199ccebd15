// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/spdemo/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbours
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Neighbours shows the fixed enumeration order walkers rely on.
// The centre of a 3×3 grid has its east neighbour blocked.
func ExampleGridGraph_Neighbours() {
	g, _ := gridgraph.NewGridGraph(3, 3)
	east, _ := g.Cell(1, 2)
	_ = g.SetBlocked(east, true)

	center, _ := g.Cell(1, 1)
	for _, diag := range []bool{false, true} {
		fmt.Printf("diagonals=%v:", diag)
		for _, n := range g.Neighbours(center, diag) {
			fmt.Printf(" (%d,%d)", n.Row(), n.Col())
		}
		fmt.Println()
	}
	// Output:
	// diagonals=false: (0,1) (2,1) (1,0)
	// diagonals=true: (2,2) (2,1) (2,0) (1,0) (0,2) (0,1) (0,0)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Breach finds the fewest walls separating two corners.
//
//	. # . .
//	. # # .
//	# # . .
func ExampleGridGraph_Breach() {
	g, _ := gridgraph.NewGridGraph(3, 4)
	for _, rc := range [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 0}, {2, 1}} {
		c, _ := g.Cell(rc[0], rc[1])
		_ = g.SetBlocked(c, true)
	}
	src, _ := g.Cell(0, 0)
	dst, _ := g.Cell(2, 3)

	fmt.Println("reachable:", g.Reachable(src, dst, false))
	walls, _ := g.Breach(src, dst, false)
	for _, w := range walls {
		fmt.Printf("remove (%d,%d)\n", w.Row(), w.Col())
	}
	// Output:
	// reachable: false
	// remove (0,1)
}
