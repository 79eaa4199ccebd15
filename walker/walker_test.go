package walker_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdemo/astar"
	"github.com/katalvlaran/spdemo/bfs"
	"github.com/katalvlaran/spdemo/gridgraph"
	"github.com/katalvlaran/spdemo/walker"
)

func corners(t *testing.T, g *gridgraph.GridGraph) (*gridgraph.Cell, *gridgraph.Cell) {
	t.Helper()
	src, err := g.Cell(0, 0)
	require.NoError(t, err)
	dst, err := g.Cell(g.Rows()-1, g.Cols()-1)
	require.NoError(t, err)
	return src, dst
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"A*", "BFS", "Dijkstra"}, walker.Names())
}

func TestNew_Registry(t *testing.T) {
	g, err := gridgraph.NewGridGraph(4, 4)
	require.NoError(t, err)
	src, dst := corners(t, g)

	w, err := walker.New(walker.AStar, g, src, dst, true)
	require.NoError(t, err)
	assert.IsType(t, &astar.Walker{}, w)

	w, err = walker.New(walker.Dijkstra, g, src, dst, true)
	require.NoError(t, err)
	assert.IsType(t, &astar.Walker{}, w)

	w, err = walker.New(walker.BFS, g, src, dst, false)
	require.NoError(t, err)
	assert.IsType(t, &bfs.Walker{}, w)

	_, err = walker.New("DFS", g, src, dst, false)
	assert.ErrorIs(t, err, walker.ErrUnknownAlgorithm)
}

func TestNew_PropagatesConstructorErrors(t *testing.T) {
	g, err := gridgraph.NewGridGraph(2, 2)
	require.NoError(t, err)
	src, dst := corners(t, g)
	require.NoError(t, g.SetBlocked(dst, true))

	for _, name := range walker.Names() {
		w, err := walker.New(name, g, src, dst, false)
		assert.Error(t, err, name)
		assert.Nil(t, w, name)
	}
	_, err = walker.New(walker.BFS, g, src, dst, false)
	assert.ErrorIs(t, err, bfs.ErrBlockedEndpoint)
}

func TestRun(t *testing.T) {
	g, err := gridgraph.NewGridGraph(5, 5)
	require.NoError(t, err)
	src, dst := corners(t, g)

	w, err := walker.New(walker.BFS, g, src, dst, false)
	require.NoError(t, err)
	steps, err := walker.Run(context.Background(), w, 0)
	require.NoError(t, err)
	assert.True(t, w.Found())
	assert.Equal(t, 25, steps, "BFS pops every cell before the far corner")
	assert.Len(t, w.Path(), 9)
}

func TestRun_StepLimit(t *testing.T) {
	g, err := gridgraph.NewGridGraph(5, 5)
	require.NoError(t, err)
	src, dst := corners(t, g)

	w, err := walker.New(walker.Dijkstra, g, src, dst, false)
	require.NoError(t, err)
	steps, err := walker.Run(context.Background(), w, 3)
	assert.ErrorIs(t, err, walker.ErrStepLimit)
	assert.Equal(t, 3, steps)
	assert.False(t, w.Finished())
}

func TestRun_Cancelled(t *testing.T) {
	g, err := gridgraph.NewGridGraph(3, 3)
	require.NoError(t, err)
	src, dst := corners(t, g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w, err := walker.New(walker.AStar, g, src, dst, false)
	require.NoError(t, err)
	steps, err := walker.Run(ctx, w, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
}

// TestWalkers_Agree runs every registered algorithm on the same random grids.
// All agree on reachability; A* and Dijkstra agree on cost; on uniform
// weights BFS hop count equals the A* cost.
func TestWalkers_Agree(t *testing.T) {
	type coster interface{ Cost() float64 }
	rnd := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 2+rnd.Intn(10), 2+rnd.Intn(10)
		weighted := trial%2 == 0
		g, err := gridgraph.NewGridGraph(rows, cols)
		require.NoError(t, err)
		for c := range g.Cells() {
			switch p := rnd.Float64(); {
			case p < 0.25:
				require.NoError(t, g.SetBlocked(c, true))
			case weighted && p < 0.5:
				require.NoError(t, g.SetWeight(c, float64(2+rnd.Intn(4))))
			}
		}
		src, dst := corners(t, g)
		require.NoError(t, g.SetBlocked(src, false))
		require.NoError(t, g.SetBlocked(dst, false))

		for _, diag := range []bool{false, true} {
			found := make(map[string]bool)
			costs := make(map[string]float64)
			hops := make(map[string]int)
			for _, name := range walker.Names() {
				g.Reset(false)
				w, err := walker.New(name, g, src, dst, diag)
				require.NoError(t, err)
				_, err = walker.Run(context.Background(), w, 0)
				require.NoError(t, err)
				found[name] = w.Found()
				hops[name] = len(w.Path()) - 1
				if c, ok := w.(coster); ok {
					costs[name] = c.Cost()
				}
			}

			assert.Equal(t, found[walker.AStar], found[walker.BFS], "trial %d diag=%v", trial, diag)
			assert.Equal(t, found[walker.AStar], found[walker.Dijkstra], "trial %d diag=%v", trial, diag)
			if !found[walker.AStar] {
				continue
			}
			assert.InDelta(t, costs[walker.Dijkstra], costs[walker.AStar], 1e-9, "trial %d diag=%v", trial, diag)
			if !weighted {
				assert.InDelta(t, float64(hops[walker.BFS]), costs[walker.AStar], 1e-9, "trial %d diag=%v", trial, diag)
			}
		}
	}
}
