package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdemo/gridgraph"
	"github.com/katalvlaran/spdemo/maze"
)

func layout(g *gridgraph.GridGraph) []bool {
	out := make([]bool, 0, g.Size())
	for c := range g.Cells() {
		out = append(out, c.Status() == gridgraph.Blocked)
	}
	return out
}

func TestCarve_Errors(t *testing.T) {
	g, err := gridgraph.NewGridGraph(3, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, maze.Carve(nil, rand.New(rand.NewSource(1))), maze.ErrNilGraph)
	assert.ErrorIs(t, maze.Carve(g, nil), maze.ErrNilRand)
}

// TestCarve_PerfectMaze checks the spanning-tree shape on several sizes:
// every room is open, exactly rooms-1 passages are open, no cell at odd
// (row, col) is open, and all open cells form one orthogonal region.
func TestCarve_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 9}, {2, 2}, {5, 5}, {8, 13}, {21, 40}}
	for _, sz := range sizes {
		g, err := gridgraph.NewGridGraph(sz[0], sz[1])
		require.NoError(t, err)
		require.NoError(t, maze.Carve(g, rand.New(rand.NewSource(int64(sz[0]*100+sz[1])))))

		rooms := ((sz[0] + 1) / 2) * ((sz[1] + 1) / 2)
		open := 0
		for c := range g.Cells() {
			even := c.Row()%2 == 0 && c.Col()%2 == 0
			odd := c.Row()%2 == 1 && c.Col()%2 == 1
			switch {
			case even:
				assert.NotEqual(t, gridgraph.Blocked, c.Status(), "room %s", c)
			case odd:
				assert.Equal(t, gridgraph.Blocked, c.Status(), "pillar %s", c)
			}
			if c.Status() != gridgraph.Blocked {
				open++
			}
		}
		assert.Equal(t, 2*rooms-1, open, "size %v", sz)
		assert.Len(t, g.Regions(false), 1, "size %v", sz)
	}
}

func TestCarve_Deterministic(t *testing.T) {
	carve := func(seed int64) []bool {
		g, err := gridgraph.NewGridGraph(15, 31)
		require.NoError(t, err)
		require.NoError(t, maze.Carve(g, rand.New(rand.NewSource(seed))))
		return layout(g)
	}
	assert.Equal(t, carve(9), carve(9))
	assert.NotEqual(t, carve(9), carve(10))
}

// TestCarve_ResetsGrid carves over a grid holding a finished search and
// custom weights and expects a clean slate.
func TestCarve_ResetsGrid(t *testing.T) {
	g, err := gridgraph.NewGridGraph(5, 5)
	require.NoError(t, err)
	for c := range g.Cells() {
		require.NoError(t, g.SetWeight(c, 4))
		c.Visit()
	}
	require.NoError(t, maze.Carve(g, rand.New(rand.NewSource(2))))

	for c := range g.Cells() {
		assert.Equal(t, g.BaselineWeight(), c.Weight())
		assert.Contains(t, []gridgraph.Status{gridgraph.NotVisited, gridgraph.Blocked}, c.Status())
		_, hasParent := c.Parent()
		assert.False(t, hasParent)
	}
}

func TestCarve_CornersConnected(t *testing.T) {
	g, err := gridgraph.NewGridGraph(11, 21)
	require.NoError(t, err)
	require.NoError(t, maze.Carve(g, rand.New(rand.NewSource(5))))

	src, _ := g.Cell(0, 0)
	dst, _ := g.Cell(10, 20)
	assert.True(t, g.Reachable(src, dst, false))
}
