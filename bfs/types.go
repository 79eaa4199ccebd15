// Package bfs provides tunable options and error definitions
// for the step-wise breadth-first walker over a gridgraph.GridGraph.
package bfs

import (
	"errors"

	"github.com/katalvlaran/spdemo/gridgraph"
)

// Sentinel errors for walker construction.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrBlockedEndpoint is returned when the source or destination is Blocked.
	ErrBlockedEndpoint = errors.New("bfs: source or destination is blocked")
)

// Option configures walker behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a walker.
type BFSOptions struct {
	// Diagonals selects the 8-neighbourhood instead of the 4-neighbourhood.
	Diagonals bool

	// OnDiscover is called right after a cell becomes Discovered and is
	// enqueued.
	OnDiscover func(c *gridgraph.Cell)

	// OnVisit is called right after a dequeued cell becomes Visited.
	OnVisit func(c *gridgraph.Cell)
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - 4-neighbourhood
//   - no-op hooks (OnDiscover, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Diagonals:  false,
		OnDiscover: func(*gridgraph.Cell) {},
		OnVisit:    func(*gridgraph.Cell) {},
	}
}

// WithDiagonals enables or disables diagonal moves.
func WithDiagonals(on bool) Option {
	return func(o *BFSOptions) {
		o.Diagonals = on
	}
}

// WithOnDiscover registers a callback to run on discovery.
func WithOnDiscover(fn func(c *gridgraph.Cell)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(c *gridgraph.Cell)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
