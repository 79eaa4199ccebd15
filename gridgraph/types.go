// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/spdemo.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("gridgraph: rows and cols must be positive")
	// ErrOutOfRange indicates coordinates or an index outside the grid.
	ErrOutOfRange = errors.New("gridgraph: coordinates out of range")
	// ErrInvalidWeight indicates a weight below the baseline (or a baseline below 1).
	ErrInvalidWeight = errors.New("gridgraph: invalid cell weight")
	// ErrNilCell indicates a nil *Cell was passed where a cell is required.
	ErrNilCell = errors.New("gridgraph: cell is nil")
	// ErrForeignCell indicates a cell that does not belong to the grid.
	ErrForeignCell = errors.New("gridgraph: cell does not belong to this grid")
)

// DefaultBaselineWeight is the traversal cost of a cell that carries no
// custom weight.
const DefaultBaselineWeight = 1.0

// noParent marks a cell without a back-link.
const noParent = -1

// Status is the traversal state of a Cell.
type Status int

const (
	// NotVisited is the state of every open cell before a search touches it.
	NotVisited Status = iota
	// Discovered cells sit in a walker's frontier.
	Discovered
	// Visited cells were popped from the frontier and expanded.
	Visited
	// Blocked cells are obstacles set by the editor; walkers never enter them.
	Blocked
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NotVisited:
		return "NotVisited"
	case Discovered:
		return "Discovered"
	case Visited:
		return "Visited"
	case Blocked:
		return "Blocked"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Cell is a single grid location. Coordinates are fixed at construction;
// status, weight and parent are mutated by the editor API of GridGraph and
// by walkers through Discover, Relink and Visit.
//
// The parent is stored as a row-major index into the owning grid rather
// than a pointer, so a Reset can never leave a dangling link.
type Cell struct {
	idx    int
	row    int
	col    int
	status Status
	weight float64
	parent int
}

// Row returns the cell row.
func (c *Cell) Row() int { return c.row }

// Col returns the cell column.
func (c *Cell) Col() int { return c.col }

// Index returns the row-major index of the cell within its grid.
func (c *Cell) Index() int { return c.idx }

// Status returns the current traversal state.
func (c *Cell) Status() Status { return c.status }

// Weight returns the cost of entering the cell.
func (c *Cell) Weight() float64 { return c.weight }

// Parent returns the row-major index of the cell's predecessor, if any.
func (c *Cell) Parent() (int, bool) {
	return c.parent, c.parent != noParent
}

// Discover moves a NotVisited cell to Discovered and links it to parent
// (nil means no parent). It reports false and changes nothing for any
// other status.
func (c *Cell) Discover(parent *Cell) bool {
	if c.status != NotVisited {
		return false
	}
	c.status = Discovered
	c.link(parent)

	return true
}

// Relink replaces the parent of a Discovered cell. Used when a cheaper
// route to a frontier cell is found.
func (c *Cell) Relink(parent *Cell) bool {
	if c.status != Discovered {
		return false
	}
	c.link(parent)

	return true
}

// Visit marks the cell Visited. NotVisited is accepted so a search can
// start from its source cell without discovering it first. Blocked and
// already visited cells are left untouched.
func (c *Cell) Visit() bool {
	if c.status == Blocked || c.status == Visited {
		return false
	}
	c.status = Visited

	return true
}

// String renders the cell for logs and test failures.
func (c *Cell) String() string {
	return fmt.Sprintf("([%d, %d], w: %g, status: %s)", c.row, c.col, c.weight, c.status)
}

func (c *Cell) link(parent *Cell) {
	if parent == nil {
		c.parent = noParent
		return
	}
	c.parent = parent.idx
}

// Option configures GridGraph construction via functional arguments.
// An invalid Option is recorded and surfaced by NewGridGraph.
type Option func(*Options)

// Options holds tunable parameters for a GridGraph.
type Options struct {
	// BaselineWeight is the default weight of every cell. Must be >= 1.
	BaselineWeight float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with BaselineWeight = DefaultBaselineWeight.
func DefaultOptions() Options {
	return Options{BaselineWeight: DefaultBaselineWeight}
}

// WithBaselineWeight sets the default cell weight. Values below 1 are
// rejected with ErrInvalidWeight.
func WithBaselineWeight(w float64) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: baseline %g must be >= 1", ErrInvalidWeight, w)
			return
		}
		o.BaselineWeight = w
	}
}

// GridGraph is a fixed-shape rectangular grid of cells stored in a single
// row-major arena: cell (row, col) lives at index row*cols+col.
type GridGraph struct {
	rows     int
	cols     int
	baseline float64
	cells    []Cell
}
