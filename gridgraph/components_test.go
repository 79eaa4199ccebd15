// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// fromMask builds a grid where '#' marks a Blocked cell.
func fromMask(t *testing.T, rows ...string) *GridGraph {
	t.Helper()
	g, err := NewGridGraph(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewGridGraph failed: %v", err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				if err := g.SetBlocked(&g.cells[g.index(r, c)], true); err != nil {
					t.Fatalf("SetBlocked(%d,%d): %v", r, c, err)
				}
			}
		}
	}
	return g
}

// TestRegions_Simple4 tests Regions on a 3×4 grid with orthogonal neighbourhood.
//
// Grid (# = wall, . = open):
//
//	# . . #
//	. . # #
//	# # . .
//
// Expected: 2 regions of sizes 4 and 2.
func TestRegions_Simple4(t *testing.T) {
	g := fromMask(t,
		"#..#",
		"..##",
		"##..",
	)

	regions := g.Regions(false)
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

// TestRegions_Diagonal8 checks that corner-touching cells merge with diagonals on.
//
//	. # # # .
//	# . # . #
//	# # . # #
//	# . # . #
//	. # # # .
func TestRegions_Diagonal8(t *testing.T) {
	g := fromMask(t,
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	)

	if got := len(g.Regions(true)); got != 1 {
		t.Errorf("diagonals: got %d regions; want 1", got)
	}
	if got := len(g.Regions(false)); got != 9 {
		t.Errorf("orthogonal: got %d regions; want 9", got)
	}
}

// TestRegions_AllBlocked covers the empty result.
func TestRegions_AllBlocked(t *testing.T) {
	g := fromMask(t, "##", "##")
	if got := g.Regions(false); len(got) != 0 {
		t.Errorf("all walls: got %d regions; want 0", len(got))
	}
}

// TestReachable compares reachability with and without diagonals.
func TestReachable(t *testing.T) {
	g := fromMask(t,
		".#",
		"#.",
	)
	src, _ := g.Cell(0, 0)
	dst, _ := g.Cell(1, 1)

	if g.Reachable(src, dst, false) {
		t.Error("orthogonal: want unreachable")
	}
	if !g.Reachable(src, dst, true) {
		t.Error("diagonal: want reachable")
	}
	wall, _ := g.Cell(0, 1)
	if g.Reachable(src, wall, true) {
		t.Error("blocked destination must be unreachable")
	}
	if !g.Reachable(src, src, false) {
		t.Error("a cell reaches itself")
	}
}
