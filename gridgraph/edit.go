package gridgraph

import "fmt"

// SetBlocked turns c into an obstacle or opens it again.
// Blocking also restores the baseline weight; unblocking leaves the cell
// NotVisited. Unblocking a cell that is not Blocked is a no-op.
func (g *GridGraph) SetBlocked(c *Cell, blocked bool) error {
	if err := g.Validate(c); err != nil {
		return err
	}
	if blocked {
		c.status = Blocked
		c.weight = g.baseline
		return nil
	}
	if c.status == Blocked {
		c.status = NotVisited
	}

	return nil
}

// SetWeight assigns a custom traversal cost to c. A Blocked cell becomes
// NotVisited. Weights below the baseline are rejected so the A* heuristic
// stays admissible.
func (g *GridGraph) SetWeight(c *Cell, w float64) error {
	if err := g.Validate(c); err != nil {
		return err
	}
	if w < g.baseline {
		return fmt.Errorf("%w: %g below baseline %g", ErrInvalidWeight, w, g.baseline)
	}
	c.weight = w
	if c.status == Blocked {
		c.status = NotVisited
	}

	return nil
}

// ResetWeight restores the baseline weight of c.
func (g *GridGraph) ResetWeight(c *Cell) error {
	if err := g.Validate(c); err != nil {
		return err
	}
	c.weight = g.baseline

	return nil
}

// Reset clears every parent link. With clearWalls every cell also returns
// to NotVisited and the baseline weight. Without it, Blocked cells stay
// Blocked, every other cell returns to NotVisited and weights are kept.
// Complexity: O(rows×cols).
func (g *GridGraph) Reset(clearWalls bool) {
	for i := range g.cells {
		c := &g.cells[i]
		c.parent = noParent
		if clearWalls {
			c.status = NotVisited
			c.weight = g.baseline
			continue
		}
		if c.status != Blocked {
			c.status = NotVisited
		}
	}
}
