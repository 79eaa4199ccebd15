// Package demo holds the editor and playback state of an interactive
// shortest-path demonstration, independent of any particular renderer.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/spdemo/gridgraph"
	"github.com/katalvlaran/spdemo/maze"
	"github.com/katalvlaran/spdemo/walker"
)

var (
	// ErrUnknownBrush is returned when selecting a brush that does not exist.
	ErrUnknownBrush = errors.New("demo: unknown brush")

	// ErrBusy is returned by editor helpers while a run is active or paused,
	// or while its result is still displayed.
	ErrBusy = errors.New("demo: search in progress")

	// ErrBadEndpoint is returned by SetEndpoints for points outside the
	// grid or for a source equal to the destination.
	ErrBadEndpoint = errors.New("demo: invalid endpoint")
)

// Point is a grid coordinate.
type Point struct {
	Row, Col int
}

// Config describes a new session.
type Config struct {
	Rows, Cols   int
	Algorithm    string
	Diagonals    bool
	Brush        string
	Baseline     float64
	BrushWeights []float64
}

// Result summarises a finished run.
type Result struct {
	RunID     string
	Algorithm string
	Found     bool
	Steps     int
	Visited   int     // cells expanded by the walker
	Cells     int     // cells on the path, endpoints included
	Weight    float64 // sum of the weights of those cells
}

// Session owns the grid, the two endpoints and at most one walker.
// It is not safe for concurrent use; a renderer drives it from one loop.
type Session struct {
	grid    *gridgraph.GridGraph
	src     Point
	dst     Point
	brushes []Brush
	brush   int

	algorithm string
	diagonals bool

	walker  walker.Walker
	runID   string
	steps   int
	started bool
	result  *Result
	onPath  map[int]bool

	grabbed  *Point
	painting bool

	logger *slog.Logger
}

// NewSession builds the grid and places the source in the top-left corner
// and the destination in the bottom-right corner. A nil logger falls back
// to slog.Default.
func NewSession(cfg Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var opts []gridgraph.Option
	if cfg.Baseline != 0 {
		opts = append(opts, gridgraph.WithBaselineWeight(cfg.Baseline))
	}
	g, err := gridgraph.NewGridGraph(cfg.Rows, cfg.Cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.BrushWeights {
		if w < g.BaselineWeight() {
			return nil, fmt.Errorf("%w: brush weight %g below baseline %g",
				gridgraph.ErrInvalidWeight, w, g.BaselineWeight())
		}
	}

	s := &Session{
		grid:      g,
		src:       Point{0, 0},
		dst:       Point{cfg.Rows - 1, cfg.Cols - 1},
		brushes:   NewBrushes(cfg.BrushWeights),
		diagonals: cfg.Diagonals,
		logger:    logger,
	}
	if err := s.SetAlgorithm(cfg.Algorithm); err != nil {
		return nil, err
	}
	if cfg.Brush != "" {
		if err := s.SetBrush(cfg.Brush); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Grid returns the underlying grid for rendering.
func (s *Session) Grid() *gridgraph.GridGraph { return s.grid }

// Source returns the source point.
func (s *Session) Source() Point { return s.src }

// Destination returns the destination point.
func (s *Session) Destination() Point { return s.dst }

// Started reports whether a run is playing.
func (s *Session) Started() bool { return s.started }

// Algorithm returns the selected algorithm name.
func (s *Session) Algorithm() string { return s.algorithm }

// Diagonals reports whether diagonal moves are enabled.
func (s *Session) Diagonals() bool { return s.diagonals }

// Brush returns the selected brush.
func (s *Session) Brush() Brush { return s.brushes[s.brush] }

// BrushNames lists every brush name in menu order.
func (s *Session) BrushNames() []string {
	out := make([]string, len(s.brushes))
	for i, b := range s.brushes {
		out[i] = b.Name
	}

	return out
}

// Result returns the summary of the last finished run, if one is shown.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}

	return *s.result, true
}

// OnPath reports whether c lies on the displayed path.
func (s *Session) OnPath(c *gridgraph.Cell) bool { return s.onPath[c.Index()] }

// Steps returns the number of steps taken by the current run.
func (s *Session) Steps() int { return s.steps }

// SetAlgorithm selects a registered algorithm for the next run.
func (s *Session) SetAlgorithm(name string) error {
	for _, n := range walker.Names() {
		if n == name {
			s.algorithm = name
			return nil
		}
	}

	return fmt.Errorf("%w: %q", walker.ErrUnknownAlgorithm, name)
}

// SetBrush selects a brush by name.
func (s *Session) SetBrush(name string) error {
	i, err := findBrush(s.brushes, name)
	if err != nil {
		return err
	}
	s.brush = i

	return nil
}

// SetDiagonals enables or disables diagonal moves for the next run.
func (s *Session) SetDiagonals(on bool) { s.diagonals = on }

// Toggle starts, pauses or resumes playback. The first start builds a
// walker from the selected algorithm. Toggling while a result is shown
// clears the previous run, keeping walls and weights, and starts again.
func (s *Session) Toggle() error {
	if s.result != nil {
		s.Clear(false)
	}
	if s.started {
		s.started = false
		s.logger.Debug("Search paused", "run", s.runID, "steps", s.steps)
		return nil
	}
	if s.walker == nil {
		src, _ := s.grid.Cell(s.src.Row, s.src.Col)
		dst, _ := s.grid.Cell(s.dst.Row, s.dst.Col)
		w, err := walker.New(s.algorithm, s.grid, src, dst, s.diagonals)
		if err != nil {
			return err
		}
		s.walker = w
		s.runID = uuid.NewString()
		s.steps = 0
		s.logger.Info("Search started",
			"run", s.runID,
			"algorithm", s.algorithm,
			"diagonals", s.diagonals,
			"source", s.src,
			"destination", s.dst,
		)
	}
	s.started = true

	return nil
}

// Tick advances the running walker by one step. Once the walker has
// finished, the run stops and its path becomes the displayed result.
// Tick reports whether the grid changed.
func (s *Session) Tick() bool {
	if !s.started || s.walker == nil {
		return false
	}
	if !s.walker.Finished() {
		s.walker.Step()
		s.steps++
		return true
	}
	s.finish()

	return true
}

// finish captures the path of a finished walker.
func (s *Session) finish() {
	path := s.walker.Path()
	res := &Result{
		RunID:     s.runID,
		Algorithm: s.algorithm,
		Found:     s.walker.Found(),
		Steps:     s.steps,
	}
	for c := range s.grid.Cells() {
		if c.Status() == gridgraph.Visited {
			res.Visited++
		}
	}
	s.onPath = make(map[int]bool, len(path))
	if res.Found {
		res.Cells = len(path)
		res.Weight = gridgraph.PathWeight(path)
		for _, c := range path {
			s.onPath[c.Index()] = true
		}
	}
	s.result = res
	s.started = false
	s.logger.Info("Search finished",
		"run", res.RunID,
		"found", res.Found,
		"steps", res.Steps,
		"pathCells", res.Cells,
		"pathWeight", res.Weight,
	)
}

// Solve runs the selected algorithm to completion without rendering,
// starting from a partial clear. A positive maxSteps bounds the run; when
// the bound or ctx stops it early the session is cleared and the error is
// returned.
func (s *Session) Solve(ctx context.Context, maxSteps int) (Result, error) {
	s.Clear(false)
	if err := s.Toggle(); err != nil {
		return Result{}, err
	}
	steps, err := walker.Run(ctx, s.walker, maxSteps)
	s.steps = steps
	if err != nil {
		s.logger.Warn("Search aborted", "run", s.runID, "steps", steps, "error", err)
		s.Clear(false)
		return Result{}, err
	}
	s.finish()

	return *s.result, nil
}

// SetEndpoints moves the source and destination. Both must lie inside the
// grid and differ; a Blocked endpoint cell is opened.
func (s *Session) SetEndpoints(src, dst Point) error {
	if !s.editable() {
		return ErrBusy
	}
	for _, p := range []Point{src, dst} {
		if !s.grid.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: (%d, %d) outside %dx%d",
				ErrBadEndpoint, p.Row, p.Col, s.grid.Rows(), s.grid.Cols())
		}
	}
	if src == dst {
		return fmt.Errorf("%w: source and destination are both (%d, %d)", ErrBadEndpoint, src.Row, src.Col)
	}
	s.src, s.dst = src, dst
	for _, p := range []Point{src, dst} {
		c, _ := s.grid.Cell(p.Row, p.Col)
		_ = s.grid.SetBlocked(c, false)
	}

	return nil
}

// Clear stops playback, discards the walker and result, and resets the
// grid. With clearWalls false, walls and weights survive.
func (s *Session) Clear(clearWalls bool) {
	s.walker = nil
	s.started = false
	s.result = nil
	s.onPath = nil
	s.steps = 0
	s.grabbed = nil
	s.painting = false
	s.grid.Reset(clearWalls)
	s.logger.Debug("Grid cleared", "walls", clearWalls)
}

// editable reports whether the grid may be changed by the user: no walker
// exists, not even a paused one, and no result is displayed.
func (s *Session) editable() bool {
	return !s.started && s.walker == nil && s.result == nil
}

// Press handles a mouse press on (row, col). Pressing an endpoint grabs it;
// pressing any other cell paints it with the current brush, toggling it
// back if it already carries that brush.
func (s *Session) Press(row, col int) {
	if !s.editable() || !s.grid.InBounds(row, col) {
		return
	}
	p := Point{row, col}
	switch p {
	case s.src:
		s.grabbed = &s.src
	case s.dst:
		s.grabbed = &s.dst
	default:
		s.painting = true
		s.paint(p, true)
	}
}

// Drag handles mouse motion with the button held: a grabbed endpoint moves
// onto open cells, otherwise the brush paints without toggling.
func (s *Session) Drag(row, col int) {
	if !s.editable() || !s.grid.InBounds(row, col) {
		return
	}
	p := Point{row, col}
	switch {
	case s.grabbed != nil:
		c, _ := s.grid.Cell(row, col)
		if c.Status() == gridgraph.Blocked || p == s.src || p == s.dst {
			return
		}
		*s.grabbed = p
	case s.painting:
		s.paint(p, false)
	}
}

// Release ends a grab or a paint stroke.
func (s *Session) Release() {
	s.grabbed = nil
	s.painting = false
}

// paint applies the current brush to p. Endpoints are never painted.
func (s *Session) paint(p Point, click bool) {
	if p == s.src || p == s.dst {
		return
	}
	c, _ := s.grid.Cell(p.Row, p.Col)
	b := s.brushes[s.brush]
	if b.Wall {
		unblock := click && c.Status() == gridgraph.Blocked
		_ = s.grid.SetBlocked(c, !unblock)
		return
	}
	if click && c.Status() != gridgraph.Blocked && c.Weight() == b.Weight {
		_ = s.grid.ResetWeight(c)
		return
	}
	_ = s.grid.SetWeight(c, b.Weight)
}

// Maze replaces the layout with a maze generated from seed and makes sure
// both endpoints are open and connected.
func (s *Session) Maze(seed int64) error {
	if !s.editable() {
		return ErrBusy
	}
	s.Clear(true)
	if err := maze.Carve(s.grid, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}
	opened, err := s.connectEndpoints()
	if err != nil {
		return err
	}
	s.logger.Info("Maze generated",
		"seed", seed,
		"opened", opened,
		"regions", len(s.grid.Regions(s.diagonals)),
	)

	return nil
}

// Breach removes the fewest walls needed to connect source and destination
// under the current neighbourhood and returns how many were removed.
func (s *Session) Breach() (int, error) {
	if !s.editable() {
		return 0, ErrBusy
	}
	n, err := s.connectEndpoints()
	if err != nil {
		return 0, err
	}
	s.logger.Info("Walls breached", "removed", n)

	return n, nil
}

// connectEndpoints opens both endpoint cells and the cheapest set of walls
// between them.
func (s *Session) connectEndpoints() (int, error) {
	src, _ := s.grid.Cell(s.src.Row, s.src.Col)
	dst, _ := s.grid.Cell(s.dst.Row, s.dst.Col)
	_ = s.grid.SetBlocked(src, false)
	_ = s.grid.SetBlocked(dst, false)
	if s.grid.Reachable(src, dst, s.diagonals) {
		return 0, nil
	}
	walls, err := s.grid.Breach(src, dst, s.diagonals)
	if err != nil {
		return 0, err
	}
	for _, c := range walls {
		if err := s.grid.SetBlocked(c, false); err != nil {
			return 0, err
		}
	}

	return len(walls), nil
}
