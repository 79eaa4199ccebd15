/*
Package maze carves perfect mazes into a gridgraph.GridGraph.

Cells at even (row, col) coordinates are rooms. Two rooms two cells apart
in the same row or column are joined through the cell between them, the
passage. Wilson's algorithm picks which passages to open: loop-erased random
walks from unvisited rooms until they hit the growing tree. The result is a
uniform spanning tree over the rooms, so every room is reachable from every
other room by exactly one route. Everything that is neither a room nor an
opened passage becomes Blocked.

Only the grid's editor API is used, so the carved layout is an ordinary
wall pattern that the user may keep editing.
*/
package maze

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/spdemo/gridgraph"
)

var (
	// ErrNilGraph is returned when Carve receives a nil grid.
	ErrNilGraph = errors.New("maze: graph is nil")

	// ErrNilRand is returned when Carve receives a nil random source.
	ErrNilRand = errors.New("maze: random source is nil")
)

// directions between neighbouring rooms, in room-lattice units: N, S, W, E.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// lattice is the grid of rooms embedded in the cell grid.
type lattice struct {
	g          *gridgraph.GridGraph
	rows, cols int    // rooms per column and per row
	open       []bool // cell index → room or opened passage
}

// Carve resets g with walls cleared and lays out a new maze drawn from rnd.
// The same seed always produces the same maze on the same grid size.
//
// Complexity: expected O(V log V) for the random walks, O(V) memory.
func Carve(g *gridgraph.GridGraph, rnd *rand.Rand) error {
	if g == nil {
		return ErrNilGraph
	}
	if rnd == nil {
		return ErrNilRand
	}
	g.Reset(true)

	l := &lattice{
		g:    g,
		rows: (g.Rows() + 1) / 2,
		cols: (g.Cols() + 1) / 2,
		open: make([]bool, g.Size()),
	}
	l.wilson(rnd)

	for c := range g.Cells() {
		if err := g.SetBlocked(c, !l.open[c.Index()]); err != nil {
			return err
		}
	}

	return nil
}

// wilson builds the spanning tree. Every room is opened; passages are
// opened along each loop-erased walk.
func (l *lattice) wilson(rnd *rand.Rand) {
	total := l.rows * l.cols
	for room := range total {
		l.open[l.cellIndex(room)] = true
	}

	inTree := make([]bool, total)
	next := make([]int, total)
	order := rnd.Perm(total)
	inTree[order[0]] = true

	for _, start := range order[1:] {
		if inTree[start] {
			continue
		}
		// Random walk until the tree is hit. Overwriting next on revisits
		// erases any loop the walk made.
		for cur := start; !inTree[cur]; {
			nbrs := l.neighbours(cur)
			next[cur] = nbrs[rnd.Intn(len(nbrs))]
			cur = next[cur]
		}
		// Retrace the loop-erased route and add it to the tree.
		for cur := start; !inTree[cur]; cur = next[cur] {
			inTree[cur] = true
			l.openPassage(cur, next[cur])
		}
	}
}

// neighbours returns the rooms adjacent to room on the lattice.
func (l *lattice) neighbours(room int) []int {
	r, c := room/l.cols, room%l.cols
	out := make([]int, 0, len(directions))
	for _, d := range directions {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= l.rows || nc < 0 || nc >= l.cols {
			continue
		}
		out = append(out, nr*l.cols+nc)
	}

	return out
}

// openPassage opens the cell between two adjacent rooms.
func (l *lattice) openPassage(a, b int) {
	ar, ac := 2*(a/l.cols), 2*(a%l.cols)
	br, bc := 2*(b/l.cols), 2*(b%l.cols)
	l.open[((ar+br)/2)*l.g.Cols()+(ac+bc)/2] = true
}

// cellIndex maps a room to the row-major index of its grid cell.
func (l *lattice) cellIndex(room int) int {
	return 2*(room/l.cols)*l.g.Cols() + 2*(room%l.cols)
}
