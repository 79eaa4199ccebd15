package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdemo/bfs"
	"github.com/katalvlaran/spdemo/gridgraph"
)

// buildGrid creates a grid from rows of text where '#' is a wall.
func buildGrid(t testing.TB, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.NewGridGraph(len(rows), len(rows[0]))
	require.NoError(t, err)
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				cell, _ := g.Cell(r, c)
				require.NoError(t, g.SetBlocked(cell, true))
			}
		}
	}
	return g
}

func cell(t testing.TB, g *gridgraph.GridGraph, r, c int) *gridgraph.Cell {
	t.Helper()
	out, err := g.Cell(r, c)
	require.NoError(t, err)
	return out
}

func runToEnd(w *bfs.Walker) {
	for !w.Finished() {
		w.Step()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestNew_Errors(t *testing.T) {
	g := buildGrid(t, ".#")
	other := buildGrid(t, "..")
	src := cell(t, g, 0, 0)

	_, err := bfs.New(nil, src, src)
	assert.ErrorIs(t, err, bfs.ErrNilGraph)

	_, err = bfs.New(g, src, cell(t, g, 0, 1))
	assert.ErrorIs(t, err, bfs.ErrBlockedEndpoint)

	_, err = bfs.New(g, src, cell(t, other, 0, 1))
	assert.ErrorIs(t, err, gridgraph.ErrForeignCell)

	_, err = bfs.New(g, nil, src)
	assert.ErrorIs(t, err, gridgraph.ErrNilCell)
}

// TestBFS_SingleCell covers the 1×1 grid where source equals destination.
func TestBFS_SingleCell(t *testing.T) {
	g := buildGrid(t, ".")
	c := cell(t, g, 0, 0)
	w, err := bfs.New(g, c, c)
	require.NoError(t, err)

	assert.False(t, w.Finished())
	w.Step()
	assert.True(t, w.Finished())
	assert.True(t, w.Found())
	assert.Equal(t, []*gridgraph.Cell{c}, w.Path())
	assert.Equal(t, 1, w.Steps())
}

// TestBFS_3x3 pins the concrete 3×3 scenarios for both neighbourhoods.
func TestBFS_3x3(t *testing.T) {
	cases := []struct {
		name      string
		diagonals bool
		wantLen   int
	}{
		{"Orthogonal", false, 5},
		{"Diagonal", true, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGrid(t, "...", "...", "...")
			src, dst := cell(t, g, 0, 0), cell(t, g, 2, 2)
			w, err := bfs.New(g, src, dst, bfs.WithDiagonals(tc.diagonals))
			require.NoError(t, err)
			runToEnd(w)

			path := w.Path()
			require.True(t, w.Found())
			assert.Len(t, path, tc.wantLen)
			assert.Equal(t, dst, path[0], "path starts at destination")
			assert.Equal(t, src, path[len(path)-1], "path ends at source")
		})
	}
}

// TestBFS_DetourAroundCenter blocks (1,1) and expects a 5-cell detour.
func TestBFS_DetourAroundCenter(t *testing.T) {
	g := buildGrid(t, "...", ".#.", "...")
	center := cell(t, g, 1, 1)
	w, err := bfs.New(g, cell(t, g, 0, 0), cell(t, g, 2, 2))
	require.NoError(t, err)
	runToEnd(w)

	path := w.Path()
	assert.Len(t, path, 5)
	assert.NotContains(t, path, center)
	assert.Equal(t, gridgraph.Blocked, center.Status(), "walkers never touch walls")
}

// TestBFS_ParentOrder checks that the first discovery wins: with N,S,W,E
// order from (0,0), (1,0) is discovered before (0,1) and the path to (1,1)
// goes through (1,0).
func TestBFS_ParentOrder(t *testing.T) {
	g := buildGrid(t, "..", "..")
	w, err := bfs.New(g, cell(t, g, 0, 0), cell(t, g, 1, 1))
	require.NoError(t, err)
	runToEnd(w)

	path := w.Path()
	require.Len(t, path, 3)
	assert.Equal(t, cell(t, g, 1, 0), path[1])
}

// TestBFS_NoPath walls the destination off and checks the sentinel.
func TestBFS_NoPath(t *testing.T) {
	g := buildGrid(t, ".#.", "##.", "...")
	dst := cell(t, g, 2, 2)
	w, err := bfs.New(g, cell(t, g, 0, 0), dst)
	require.NoError(t, err)

	w.Step() // visits source; no open neighbours
	assert.False(t, w.Finished(), "queue empties, finish happens on the next step")
	w.Step()
	assert.True(t, w.Finished())
	assert.False(t, w.Found())
	assert.Equal(t, []*gridgraph.Cell{dst}, w.Path())
	assert.Equal(t, 1, w.Steps())
}

// TestBFS_StepIsBounded verifies one dequeue per Step and idempotence after finish.
func TestBFS_StepIsBounded(t *testing.T) {
	g := buildGrid(t, "....", "....", "....")
	var visits, discoveries int
	w, err := bfs.New(g, cell(t, g, 0, 0), cell(t, g, 2, 3),
		bfs.WithOnVisit(func(*gridgraph.Cell) { visits++ }),
		bfs.WithOnDiscover(func(*gridgraph.Cell) { discoveries++ }),
	)
	require.NoError(t, err)

	for i := 1; !w.Finished(); i++ {
		w.Step()
		assert.Equal(t, i, visits, "exactly one visit per step")
	}

	snapshot := make([]gridgraph.Status, 0, g.Size())
	for c := range g.Cells() {
		snapshot = append(snapshot, c.Status())
	}
	before := w.Steps()
	w.Step()
	w.Step()
	assert.Equal(t, before, w.Steps())
	i := 0
	for c := range g.Cells() {
		assert.Equal(t, snapshot[i], c.Status(), "no mutation after finish at %s", c)
		i++
	}
	assert.Positive(t, discoveries)
}

// TestBFS_StatusMonotonic records statuses after every step and checks
// that no cell ever moves backwards.
func TestBFS_StatusMonotonic(t *testing.T) {
	g := buildGrid(t, ".....", ".##..", ".....")
	w, err := bfs.New(g, cell(t, g, 0, 0), cell(t, g, 2, 4), bfs.WithDiagonals(true))
	require.NoError(t, err)

	prev := make(map[int]gridgraph.Status)
	for !w.Finished() {
		w.Step()
		for c := range g.Cells() {
			if p, ok := prev[c.Index()]; ok {
				assert.GreaterOrEqual(t, c.Status(), p, "status regressed at %s", c)
			}
			prev[c.Index()] = c.Status()
		}
	}
}

// TestBFS_HopDistanceProperty checks that on open uniform grids the hop
// count equals Manhattan (4-neighbourhood) or Chebyshev (8-neighbourhood)
// distance.
func TestBFS_HopDistanceProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 1+rnd.Intn(8), 1+rnd.Intn(8)
		g, err := gridgraph.NewGridGraph(rows, cols)
		require.NoError(t, err)
		sr, sc := rnd.Intn(rows), rnd.Intn(cols)
		dr, dc := rnd.Intn(rows), rnd.Intn(cols)

		for _, diag := range []bool{false, true} {
			g.Reset(true)
			w, err := bfs.New(g, cell(t, g, sr, sc), cell(t, g, dr, dc), bfs.WithDiagonals(diag))
			require.NoError(t, err)
			runToEnd(w)

			want := abs(sr-dr) + abs(sc-dc)
			if diag {
				want = max(abs(sr-dr), abs(sc-dc))
			}
			require.True(t, w.Found())
			assert.Equal(t, want, len(w.Path())-1,
				"%dx%d (%d,%d)->(%d,%d) diagonals=%v", rows, cols, sr, sc, dr, dc, diag)
		}
	}
}

// TestBFS_IgnoresWeights makes the straight line expensive and expects BFS to take it anyway.
func TestBFS_IgnoresWeights(t *testing.T) {
	g := buildGrid(t, "...", "...")
	require.NoError(t, g.SetWeight(cell(t, g, 0, 1), 9))
	w, err := bfs.New(g, cell(t, g, 0, 0), cell(t, g, 0, 2))
	require.NoError(t, err)
	runToEnd(w)

	assert.Equal(t, []*gridgraph.Cell{cell(t, g, 0, 2), cell(t, g, 0, 1), cell(t, g, 0, 0)}, w.Path())
}

// TestBFS_DropsCellBlockedAfterEnqueue walls off a queued cell between
// steps: it is dequeued but neither visited nor expanded, so the
// destination behind it is never reached.
func TestBFS_DropsCellBlockedAfterEnqueue(t *testing.T) {
	g := buildGrid(t, "...")
	dst := cell(t, g, 0, 2)
	visits := 0
	w, err := bfs.New(g, cell(t, g, 0, 0), dst, bfs.WithOnVisit(func(*gridgraph.Cell) { visits++ }))
	require.NoError(t, err)

	w.Step()
	require.NoError(t, g.SetBlocked(cell(t, g, 0, 1), true))
	runToEnd(w)

	assert.False(t, w.Found())
	assert.Equal(t, []*gridgraph.Cell{dst}, w.Path())
	assert.Equal(t, 1, visits)
	assert.Equal(t, gridgraph.NotVisited, dst.Status())
}
