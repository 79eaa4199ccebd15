// Package walker defines the contract shared by every step-wise search and
// a registry that builds walkers by display name.
package walker

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/spdemo/astar"
	"github.com/katalvlaran/spdemo/bfs"
	"github.com/katalvlaran/spdemo/dijkstra"
	"github.com/katalvlaran/spdemo/gridgraph"
)

// Registered algorithm names.
const (
	AStar    = "A*"
	Dijkstra = "Dijkstra"
	BFS      = "BFS"
)

var (
	// ErrUnknownAlgorithm is returned by New for a name that is not registered.
	ErrUnknownAlgorithm = errors.New("walker: unknown algorithm")

	// ErrStepLimit is returned by Run when maxSteps is exhausted before the
	// walker finishes.
	ErrStepLimit = errors.New("walker: step limit reached")
)

// Walker is a search that advances by one bounded unit of work per Step.
// All observable search state lives in the grid cells.
type Walker interface {
	// Finished reports whether the search reached its terminal state.
	Finished() bool
	// Step pops one frontier cell and expands it. No-op once Finished.
	Step()
	// Path returns cells from the destination back to the source, or
	// exactly [destination] when no path was found.
	Path() []*gridgraph.Cell
	// Found reports whether the destination was reached.
	Found() bool
}

// Constructor builds a walker over g between src and dst.
type Constructor func(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, diagonals bool) (Walker, error)

var registry = map[string]Constructor{
	AStar: func(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, diagonals bool) (Walker, error) {
		return astar.New(g, src, dst, astar.WithDiagonals(diagonals))
	},
	Dijkstra: func(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, diagonals bool) (Walker, error) {
		return dijkstra.New(g, src, dst, dijkstra.WithDiagonals(diagonals))
	},
	BFS: func(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, diagonals bool) (Walker, error) {
		return bfs.New(g, src, dst, bfs.WithDiagonals(diagonals))
	},
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// New builds the walker registered under name.
func New(name string, g *gridgraph.GridGraph, src, dst *gridgraph.Cell, diagonals bool) (Walker, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	w, err := ctor(g, src, dst, diagonals)
	if err != nil {
		return nil, fmt.Errorf("walker: %s: %w", name, err)
	}

	return w, nil
}

// Run steps w until it finishes and returns the number of Step calls made.
// The context is checked once per step. A positive maxSteps bounds the
// number of calls; reaching it returns ErrStepLimit.
func Run(ctx context.Context, w Walker, maxSteps int) (int, error) {
	steps := 0
	for !w.Finished() {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}
		if maxSteps > 0 && steps >= maxSteps {
			return steps, fmt.Errorf("%w: %d", ErrStepLimit, maxSteps)
		}
		w.Step()
		steps++
	}

	return steps, nil
}
