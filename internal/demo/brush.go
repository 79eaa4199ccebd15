package demo

import (
	"fmt"
	"strconv"
)

// WallBrush is the name of the brush that paints obstacles.
const WallBrush = "Wall"

// Brush is a painting tool: either a wall or a fixed cell weight.
type Brush struct {
	Name   string
	Wall   bool
	Weight float64
}

// NewBrushes returns the wall brush followed by one brush per weight,
// named "Weight-N".
func NewBrushes(weights []float64) []Brush {
	out := make([]Brush, 0, len(weights)+1)
	out = append(out, Brush{Name: WallBrush, Wall: true})
	for _, w := range weights {
		out = append(out, Brush{
			Name:   "Weight-" + strconv.FormatFloat(w, 'g', -1, 64),
			Weight: w,
		})
	}

	return out
}

// findBrush returns the index of the brush called name.
func findBrush(brushes []Brush, name string) (int, error) {
	for i, b := range brushes {
		if b.Name == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBrush, name)
}
