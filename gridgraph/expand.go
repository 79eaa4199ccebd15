package gridgraph

import (
	"container/list"
)

// Breach finds the smallest set of Blocked cells whose removal connects
// src to dst, and returns them in route order (src side first). An empty
// result means dst is already reachable.
//
// Behavior:
//  1. Validate both endpoints belong to g.
//  2. 0–1 BFS from src over every in-bounds cell:
//     • Moving into an open cell    → cost 0
//     • Moving into a Blocked cell  → cost 1
//  3. Stop when dst is popped.
//  4. Reconstruct the route via predecessors and keep its Blocked cells.
//
// The grid is not modified; callers unblock the returned cells themselves.
// Neighbour order matches Neighbours, so the chosen breach is deterministic.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *GridGraph) Breach(src, dst *Cell, diagonals bool) ([]*Cell, error) {
	if err := g.Validate(src); err != nil {
		return nil, err
	}
	if err := g.Validate(dst); err != nil {
		return nil, err
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	stepCost := func(i int) int {
		if g.cells[i].status == Blocked {
			return 1
		}
		return 0
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[src.idx] = stepCost(src.idx)
	dq.PushFront(src.idx)

	offsets := neighborOffsets(diagonals)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst.idx {
			break
		}
		ur, uc := g.Coordinate(u)
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			v := g.index(vr, vc)
			step := stepCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every cell is enterable at some cost, so dst always has a route.
	var walls []*Cell
	for at := dst.idx; at >= 0; at = prev[at] {
		if g.cells[at].status == Blocked {
			walls = append([]*Cell{&g.cells[at]}, walls...)
		}
	}

	return walls, nil
}
