package tui

import "github.com/charmbracelet/bubbles/key"

// drawerKeyMap lists the bindings of the drawer table.
type drawerKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Animate     key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newDrawerKeyMap() drawerKeyMap {
	return drawerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle row"),
		),
		Animate: key.NewBinding(
			key.WithKeys(" ", "a"),
			key.WithHelp("space/a", "toggle with animation"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k drawerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Animate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k drawerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Animate},
		{k.ExpandAll, k.CollapseAll},
		{k.Help, k.Quit},
	}
}
