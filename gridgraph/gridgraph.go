// Package gridgraph provides a mutable obstacle/weight grid whose cells
// carry the traversal state of an incremental shortest-path search.
//
//   - Four- or eight-neighbourhood enumeration in a fixed, reproducible order
//   - Bounds-checked lookup and lazy row-major traversal
//   - Editor API for walls and weights, full and partial reset
//   - Region analysis and minimum-breach expansion between two cells
package gridgraph

import (
	"fmt"
	"iter"
)

// NewGridGraph allocates a rows×cols grid. Every cell starts NotVisited,
// with the baseline weight and no parent.
// Returns ErrInvalidDimensions if rows or cols is not positive and
// ErrInvalidWeight for a baseline below 1.
// Complexity: O(rows×cols) time and memory.
func NewGridGraph(rows, cols int, opts ...Option) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Cell{
			idx:    i,
			row:    i / cols,
			col:    i % cols,
			status: NotVisited,
			weight: o.BaselineWeight,
			parent: noParent,
		}
	}

	return &GridGraph{
		rows:     rows,
		cols:     cols,
		baseline: o.BaselineWeight,
		cells:    cells,
	}, nil
}

// Rows returns the number of rows.
func (g *GridGraph) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *GridGraph) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *GridGraph) Size() int { return len(g.cells) }

// BaselineWeight returns the default cell weight.
func (g *GridGraph) BaselineWeight() float64 { return g.baseline }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (g *GridGraph) Cell(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfRange, row, col, g.rows, g.cols)
	}

	return &g.cells[g.index(row, col)], nil
}

// CellAt returns the cell at a row-major index or ErrOutOfRange.
func (g *GridGraph) CellAt(idx int) (*Cell, error) {
	if idx < 0 || idx >= len(g.cells) {
		return nil, fmt.Errorf("%w: index %d outside [0,%d)", ErrOutOfRange, idx, len(g.cells))
	}

	return &g.cells[idx], nil
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// Owns reports whether c is a cell of this grid (pointer identity).
func (g *GridGraph) Owns(c *Cell) bool {
	if c == nil || c.idx < 0 || c.idx >= len(g.cells) {
		return false
	}

	return &g.cells[c.idx] == c
}

// Cells yields every cell exactly once in row-major order. The sequence is
// lazy and may be ranged over any number of times.
func (g *GridGraph) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Neighbours returns the in-bounds, non-Blocked neighbours of c.
//
// Without diagonals the order is north, south, west, east. With diagonals
// the row delta runs over +1, 0, -1 and, inside it, the column delta over
// +1, 0, -1 (skipping 0,0). Walkers rely on this order for reproducible
// parent assignment, so it must not change.
// Complexity: O(d), d = 4 or 8.
func (g *GridGraph) Neighbours(c *Cell, diagonals bool) []*Cell {
	offsets := neighborOffsets(diagonals)
	out := make([]*Cell, 0, len(offsets))
	for _, d := range offsets {
		r, col := c.row+d[0], c.col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		n := &g.cells[g.index(r, col)]
		if n.status == Blocked {
			continue
		}
		out = append(out, n)
	}

	return out
}

var (
	// offsets4 lists (row, col) deltas: N, S, W, E.
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	// offsets8 lists (row, col) deltas with row outer and col inner, both +1, 0, -1.
	offsets8 = [][2]int{{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// neighborOffsets returns the precomputed delta table for the neighbourhood.
func neighborOffsets(diagonals bool) [][2]int {
	if diagonals {
		return offsets8
	}

	return offsets4
}

// index maps (row, col) to a row-major index: row*cols + col.
func (g *GridGraph) index(row, col int) int {
	return row*g.cols + col
}

// Validate returns ErrNilCell or ErrForeignCell unless c is a cell of g.
func (g *GridGraph) Validate(c *Cell) error {
	if c == nil {
		return ErrNilCell
	}
	if !g.Owns(c) {
		return fmt.Errorf("%w: %s", ErrForeignCell, c)
	}

	return nil
}
