package dijkstra

import (
	"github.com/katalvlaran/spdemo/astar"
	"github.com/katalvlaran/spdemo/gridgraph"
)

// New returns an A* walker with the heuristic disabled. The disabling
// option is applied last, so no caller option can override it.
//
// Frontier order is therefore plain accumulated cost with FIFO tie-break,
// and the reported Cost is the minimum total weight from src to dst.
func New(g *gridgraph.GridGraph, src, dst *gridgraph.Cell, opts ...Option) (*astar.Walker, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, astar.WithHeuristic(false))

	return astar.New(g, src, dst, all...)
}
