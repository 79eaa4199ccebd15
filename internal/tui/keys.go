package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every key binding and doubles as the help source.
type keyMap struct {
	Toggle key.Binding
	Clear  key.Binding
	Maze   key.Binding
	Breach key.Binding
	Menu   key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Maze:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "maze")),
		Breach: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breach walls")),
		Menu:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "option")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "value")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear, k.Maze, k.Breach, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Clear, k.Maze, k.Breach},
		{k.Menu, k.Left, k.Up, k.Quit},
	}
}

// menuHelp is the binding set shown while the menu has focus.
type menuHelp struct{ keyMap }

func (k menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Menu, k.Quit}
}
