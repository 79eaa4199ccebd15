package cli

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/spdemo/gridgraph"
	"github.com/katalvlaran/spdemo/internal/demo"
)

// Grid legend for text output.
const (
	glyphSource     = 'S'
	glyphDest       = 'D'
	glyphWall       = '#'
	glyphPath       = '*'
	glyphVisited    = 'o'
	glyphDiscovered = '+'
	glyphOpen       = '.'
	glyphHeavy      = 'W'
)

// renderGrid writes one line per grid row. Unvisited weighted cells show
// their weight when it is a single digit.
func renderGrid(w io.Writer, s *demo.Session) error {
	g := s.Grid()
	src, dst := s.Source(), s.Destination()
	line := make([]byte, 0, g.Cols()+1)

	for r := 0; r < g.Rows(); r++ {
		line = line[:0]
		for c := 0; c < g.Cols(); c++ {
			cell, err := g.Cell(r, c)
			if err != nil {
				return err
			}
			switch p := (demo.Point{Row: r, Col: c}); {
			case p == src:
				line = append(line, glyphSource)
			case p == dst:
				line = append(line, glyphDest)
			default:
				line = append(line, glyph(s, g, cell))
			}
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}

	return nil
}

func glyph(s *demo.Session, g *gridgraph.GridGraph, c *gridgraph.Cell) byte {
	switch {
	case c.Status() == gridgraph.Blocked:
		return glyphWall
	case s.OnPath(c):
		return glyphPath
	case c.Status() == gridgraph.Visited:
		return glyphVisited
	case c.Status() == gridgraph.Discovered:
		return glyphDiscovered
	case c.Weight() > g.BaselineWeight():
		if c.Weight() < 10 && c.Weight() == math.Trunc(c.Weight()) {
			return '0' + byte(c.Weight())
		}
		return glyphHeavy
	}

	return glyphOpen
}

// summaryRow is one line of the solve summary. Err is set when the run
// was cut short.
type summaryRow struct {
	Algorithm string
	Result    demo.Result
	Err       error
}

func renderSummary(rows []summaryRow) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Algorithm", "Steps", "Visited", "Path cells", "Path weight", "Found"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
	})

	found := 0
	for _, row := range rows {
		res := row.Result
		switch {
		case row.Err != nil:
			table.Append([]string{row.Algorithm, "-", "-", "-", "-", row.Err.Error()})
		case res.Found:
			found++
			table.Append([]string{
				row.Algorithm,
				strconv.Itoa(res.Steps),
				strconv.Itoa(res.Visited),
				strconv.Itoa(res.Cells),
				strconv.FormatFloat(res.Weight, 'g', -1, 64),
				"yes",
			})
		default:
			table.Append([]string{row.Algorithm, strconv.Itoa(res.Steps), strconv.Itoa(res.Visited), "-", "-", "no"})
		}
	}

	table.SetFooter([]string{fmt.Sprintf("%d runs", len(rows)), "", "", "", "", fmt.Sprintf("%d found", found)})
	table.Render()

	return buf.String()
}
