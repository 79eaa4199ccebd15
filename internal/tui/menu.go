package tui

import (
	"slices"
)

// Menu option names, kept in alphabetical order.
const (
	optAlgorithm = "Algorithm"
	optBrush     = "Brush"
	optDiagonals = "Diagonals"
)

// ring is a cyclic list with one active item.
type ring struct {
	items []string
	idx   int
}

func (r *ring) get() string { return r.items[r.idx] }

func (r *ring) next() { r.idx = (r.idx + 1) % len(r.items) }

func (r *ring) prev() { r.idx = (r.idx - 1 + len(r.items)) % len(r.items) }

// set activates val; unknown values leave the ring unchanged.
func (r *ring) set(val string) {
	if i := slices.Index(r.items, val); i >= 0 {
		r.idx = i
	}
}

// menu is the option bar below the grid. While active, arrow keys move
// between options and cycle the value of the focused one.
type menu struct {
	options ring
	values  map[string]*ring
	active  bool
}

func newMenu(algorithms, brushes []string) menu {
	return menu{
		options: ring{items: []string{optAlgorithm, optBrush, optDiagonals}},
		values: map[string]*ring{
			optAlgorithm: {items: algorithms},
			optBrush:     {items: brushes},
			optDiagonals: {items: []string{"Off", "On"}},
		},
	}
}

// selected returns the current value of option.
func (m *menu) selected(option string) string { return m.values[option].get() }

// selectValue activates value for option.
func (m *menu) selectValue(option, value string) { m.values[option].set(value) }

func (m *menu) left() { m.options.prev() }
func (m *menu) right() { m.options.next() }
func (m *menu) up() { m.values[m.options.get()].next() }
func (m *menu) down() { m.values[m.options.get()].prev() }

// focused reports whether option has the keyboard focus.
func (m *menu) focused(option string) bool {
	return m.active && m.options.get() == option
}
