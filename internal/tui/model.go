// Package tui renders a demo.Session in the terminal with Bubble Tea and
// maps keyboard and mouse input onto it.
package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/spdemo/internal/demo"
	"github.com/katalvlaran/spdemo/walker"
)

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square.
const cellWidth = 2

// Options tunes the terminal program.
type Options struct {
	FPS    int   // search steps per second
	Seed   int64 // first maze seed; each maze uses the next one
	Output io.Writer
	Logger *slog.Logger
}

type tickMsg time.Time

// Model is the Bubble Tea model wrapping a session.
type Model struct {
	session *demo.Session
	keys    keyMap
	help    help.Model
	menu    menu
	frame   time.Duration
	seed    int64
	status  string
	logger  *slog.Logger
}

// New builds a model around s, with the menu preselected from the
// session's current settings.
func New(s *demo.Session, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mn := newMenu(walker.Names(), s.BrushNames())
	mn.selectValue(optAlgorithm, s.Algorithm())
	mn.selectValue(optBrush, s.Brush().Name)
	mn.selectValue(optDiagonals, onOff(s.Diagonals()))

	return Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		menu:    mn,
		frame:   time.Second / time.Duration(fps),
		seed:    opts.Seed,
		logger:  logger,
	}
}

// Run starts the full-screen program and blocks until the user quits.
func Run(s *demo.Session, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	_, err := tea.NewProgram(New(s, opts), progOpts...).Run()

	return err
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles frames, keys, mouse events and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.session.Tick()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.menu.active {
			m.handleMouse(msg)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		// Entering or leaving the menu always clears the run but keeps
		// walls and weights; leaving applies the selection.
		m.session.Clear(false)
		m.menu.active = !m.menu.active
		if !m.menu.active {
			m.applyMenu()
		}
		return m, nil
	}

	if m.menu.active {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.menu.left()
		case key.Matches(msg, m.keys.Right):
			m.menu.right()
		case key.Matches(msg, m.keys.Up):
			m.menu.up()
		case key.Matches(msg, m.keys.Down):
			m.menu.down()
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if err := m.session.Toggle(); err != nil {
			m.fail(err)
		}
	case key.Matches(msg, m.keys.Clear):
		m.session.Clear(true)
	case key.Matches(msg, m.keys.Maze):
		if err := m.session.Maze(m.seed); err != nil {
			m.fail(err)
		} else {
			m.seed++
		}
	case key.Matches(msg, m.keys.Breach):
		if n, err := m.session.Breach(); err != nil {
			m.fail(err)
		} else if n == 0 {
			m.status = "Already connected"
		}
	}

	return m, nil
}

// handleMouse maps terminal coordinates onto grid cells. The grid is
// drawn from the top-left corner of the screen.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	row, col := msg.Y, msg.X/cellWidth
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Press(row, col)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			m.session.Drag(row, col)
		}
	case tea.MouseActionRelease:
		m.session.Release()
	}
}

// applyMenu pushes the menu selection into the session.
func (m *Model) applyMenu() {
	if err := m.session.SetAlgorithm(m.menu.selected(optAlgorithm)); err != nil {
		m.fail(err)
	}
	if err := m.session.SetBrush(m.menu.selected(optBrush)); err != nil {
		m.fail(err)
	}
	m.session.SetDiagonals(m.menu.selected(optDiagonals) == "On")
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.logger.Error("Command failed", "error", err)
}

func onOff(b bool) string {
	if b {
		return "On"
	}

	return "Off"
}
