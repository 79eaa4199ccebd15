package gridgraph

// Regions finds all contiguous regions of open (non-Blocked) cells under
// the given neighbourhood. Each region is a slice of row-major indices in
// discovery order; regions are ordered by their first cell in row-major
// order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for seen flags and output.
func (g *GridGraph) Regions(diagonals bool) [][]int {
	seen := make([]bool, len(g.cells))
	var regions [][]int

	for i0 := range g.cells {
		if seen[i0] || g.cells[i0].status == Blocked {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, u)
			for _, n := range g.Neighbours(&g.cells[u], diagonals) {
				if !seen[n.idx] {
					seen[n.idx] = true
					queue = append(queue, n.idx)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Reachable reports whether dst can be reached from src through open
// cells. It reads only Blocked status and never mutates the grid, so it is
// safe to call before starting a walker. Blocked or foreign endpoints are
// unreachable.
// Complexity: O(W·H·d).
func (g *GridGraph) Reachable(src, dst *Cell, diagonals bool) bool {
	if g.Validate(src) != nil || g.Validate(dst) != nil {
		return false
	}
	if src.status == Blocked || dst.status == Blocked {
		return false
	}
	seen := make([]bool, len(g.cells))
	seen[src.idx] = true
	queue := []int{src.idx}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst.idx {
			return true
		}
		for _, n := range g.Neighbours(&g.cells[u], diagonals) {
			if !seen[n.idx] {
				seen[n.idx] = true
				queue = append(queue, n.idx)
			}
		}
	}

	return false
}
