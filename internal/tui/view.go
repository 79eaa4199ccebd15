package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/spdemo/gridgraph"
)

var (
	openStyle       = lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240"))
	weightedStyle   = lipgloss.NewStyle().Background(lipgloss.Color("187")).Foreground(lipgloss.Color("94"))
	discoveredStyle = lipgloss.NewStyle().Background(lipgloss.Color("117")).Foreground(lipgloss.Color("24"))
	visitedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("75")).Foreground(lipgloss.Color("17"))
	blockedStyle    = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	pathStyle       = lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("52"))
	sourceStyle     = lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("231")).Bold(true)
	destStyle       = lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231")).Bold(true)

	menuStyle       = lipgloss.NewStyle().Padding(0, 1)
	menuFocusStyle  = menuStyle.Reverse(true).Bold(true)
	reportOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)
	reportFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	statusLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// View draws the grid, the run report, the menu bar and the key help.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderReport())
	b.WriteString("\n")
	b.WriteString(m.renderMenu())
	b.WriteString("\n")
	if m.menu.active {
		b.WriteString(m.help.View(menuHelp{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

func (m Model) renderGrid() string {
	g := m.session.Grid()
	src, dst := m.session.Source(), m.session.Destination()
	rows := make([]string, 0, g.Rows())
	var line strings.Builder
	for c := range g.Cells() {
		switch {
		case c.Row() == src.Row && c.Col() == src.Col:
			line.WriteString(sourceStyle.Render("S "))
		case c.Row() == dst.Row && c.Col() == dst.Col:
			line.WriteString(destStyle.Render("D "))
		default:
			line.WriteString(m.cellStyle(c).Render(cellLabel(c, g.BaselineWeight())))
		}
		if c.Col() == g.Cols()-1 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}

	return strings.Join(rows, "\n")
}

func (m Model) cellStyle(c *gridgraph.Cell) lipgloss.Style {
	if m.session.OnPath(c) {
		return pathStyle
	}
	switch c.Status() {
	case gridgraph.Blocked:
		return blockedStyle
	case gridgraph.Visited:
		return visitedStyle
	case gridgraph.Discovered:
		return discoveredStyle
	}
	if c.Weight() != m.session.Grid().BaselineWeight() {
		return weightedStyle
	}

	return openStyle
}

// cellLabel shows non-baseline weights; everything else is blank.
func cellLabel(c *gridgraph.Cell, baseline float64) string {
	if c.Status() == gridgraph.Blocked || c.Weight() == baseline {
		return strings.Repeat(" ", cellWidth)
	}
	s := strconv.FormatFloat(c.Weight(), 'g', -1, 64)
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}

	return s + strings.Repeat(" ", cellWidth-len(s))
}

func (m Model) renderReport() string {
	if m.status != "" {
		return reportFailStyle.Render(m.status)
	}
	res, ok := m.session.Result()
	switch {
	case ok && res.Found:
		return reportOKStyle.Render(fmt.Sprintf("Shortest path length: %d, weight %g", res.Cells, res.Weight))
	case ok:
		return reportFailStyle.Render("Path not found")
	case m.session.Started():
		return statusLineStyle.Render(fmt.Sprintf("%s: step %d", m.session.Algorithm(), m.session.Steps()))
	}

	return statusLineStyle.Render(fmt.Sprintf("%s ready", m.session.Algorithm()))
}

func (m Model) renderMenu() string {
	items := make([]string, 0, len(m.menu.options.items))
	for _, opt := range m.menu.options.items {
		text := fmt.Sprintf("%s: %s", opt, m.menu.selected(opt))
		if m.menu.focused(opt) {
			items = append(items, menuFocusStyle.Render(text))
			continue
		}
		items = append(items, menuStyle.Render(text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
