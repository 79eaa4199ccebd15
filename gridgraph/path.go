package gridgraph

// TracePath follows parent links from dst back to a cell without a parent
// and returns the cells in that order (dst first).
//
// When dst was never reached it has no parent, so the result is the single
// element [dst]. Callers must not read that as success on its own: a search
// whose source equals its destination yields the same shape. Walkers expose
// Found for the distinction.
//
// The walk is bounded by Size() so a corrupted link cannot loop forever.
// Complexity: O(len(path)).
func (g *GridGraph) TracePath(dst *Cell) []*Cell {
	if dst == nil {
		return nil
	}
	path := []*Cell{dst}
	cur := dst
	for range len(g.cells) {
		p, ok := cur.Parent()
		if !ok {
			break
		}
		cur = &g.cells[p]
		path = append(path, cur)
	}

	return path
}

// PathWeight sums the weights of every cell on path, endpoints included.
func PathWeight(path []*Cell) float64 {
	var total float64
	for _, c := range path {
		total += c.weight
	}

	return total
}
