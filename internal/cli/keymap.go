package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browser key bindings. It implements help.KeyMap so
// the help bubble renders it directly.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Viewport key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Notes    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous story")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next story")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Viewport: key.NewBinding(key.WithKeys("v", "tab"), key.WithHelp("v", "cycle viewport")),
		Wider:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Narrower: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "narrower")),
		Notes:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy snippet")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Viewport, k.Notes, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter, k.Escape},
		{k.Viewport, k.Wider, k.Narrower},
		{k.Notes, k.Copy, k.Help, k.Quit},
	}
}
