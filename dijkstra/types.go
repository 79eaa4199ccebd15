// Package dijkstra defines the option and error surface of the Dijkstra
// walker. Both are shared with package astar; a Dijkstra walker is an A*
// walker whose estimate is always zero.
package dijkstra

import "github.com/katalvlaran/spdemo/astar"

// Sentinel errors, identical to those of package astar so errors.Is works
// with either name.
var (
	// ErrNilGraph indicates that a nil graph was passed to New.
	ErrNilGraph = astar.ErrNilGraph

	// ErrBlockedEndpoint indicates that the source or destination is Blocked.
	ErrBlockedEndpoint = astar.ErrBlockedEndpoint
)

// Option configures the walker. Any astar.Option is accepted except that
// the heuristic cannot be switched back on.
type Option = astar.Option

// Re-exported option constructors.
var (
	WithDiagonals  = astar.WithDiagonals
	WithOnDiscover = astar.WithOnDiscover
	WithOnVisit    = astar.WithOnVisit
	WithOnRelax    = astar.WithOnRelax
)
