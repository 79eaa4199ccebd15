// Package astar defines tunable options and error definitions for the
// step-wise A* walker over a gridgraph.GridGraph.
package astar

import (
	"errors"

	"github.com/katalvlaran/spdemo/gridgraph"
)

// Sentinel errors for walker construction.
var (
	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to New.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrBlockedEndpoint indicates that the source or destination is Blocked.
	ErrBlockedEndpoint = errors.New("astar: source or destination is blocked")
)

// HeuristicFactor scales the distance estimate, which is
// HeuristicFactor × baseline weight × distance to the destination.
// Keeping it below 1 keeps the estimate strictly below the cheapest
// possible remaining cost.
//
// The distance is Manhattan without diagonals. With diagonals it is
// Chebyshev: a diagonal hop costs one cell, so Manhattan distance would
// count it twice and overestimate, and A* could then return a costlier
// path than Dijkstra.
const HeuristicFactor = 0.9

// Option configures walker behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walker.
type Options struct {
	// Diagonals selects the 8-neighbourhood instead of the 4-neighbourhood.
	Diagonals bool

	// Heuristic enables the distance estimate. With it disabled every
	// estimate is zero and the walker behaves as Dijkstra's algorithm.
	Heuristic bool

	// OnDiscover is called after a NotVisited neighbour is Discovered and pushed.
	OnDiscover func(c *gridgraph.Cell)

	// OnVisit is called after a popped cell becomes Visited.
	OnVisit func(c *gridgraph.Cell)

	// OnRelax is called after a Discovered cell receives a cheaper route.
	OnRelax func(c *gridgraph.Cell)
}

// DefaultOptions returns Options with:
//   - 4-neighbourhood
//   - heuristic enabled
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Diagonals:  false,
		Heuristic:  true,
		OnDiscover: func(*gridgraph.Cell) {},
		OnVisit:    func(*gridgraph.Cell) {},
		OnRelax:    func(*gridgraph.Cell) {},
	}
}

// WithDiagonals enables or disables diagonal moves.
func WithDiagonals(on bool) Option {
	return func(o *Options) {
		o.Diagonals = on
	}
}

// WithHeuristic enables or disables the distance estimate.
func WithHeuristic(on bool) Option {
	return func(o *Options) {
		o.Heuristic = on
	}
}

// WithOnDiscover registers a callback to run on discovery.
func WithOnDiscover(fn func(c *gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(c *gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback to run when a frontier cell gets cheaper.
func WithOnRelax(fn func(c *gridgraph.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
