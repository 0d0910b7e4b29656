package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings shown in the help line. Input routing
// itself stays in the Update switch; this is presentation only.
type keyMap struct {
	Navigate key.Binding
	Enter    key.Binding
	Filter   key.Binding
	Jump     key.Binding
	Sort     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Enter, k.Filter, k.Jump, k.Sort, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Enter},
		{k.Filter, k.Jump, k.Sort},
		{k.Reload, k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Navigate: key.NewBinding(
		key.WithKeys("up", "down", "left", "right", "k", "j", "h", "l"),
		key.WithHelp("↑↓←→", "navigate"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "detail"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Jump: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "jump"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
