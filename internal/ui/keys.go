package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the footer. Dispatch itself happens in
// the input modes; these only describe them.
type keyMap struct {
	Search  key.Binding
	Toggle  key.Binding
	Reset   key.Binding
	Move    key.Binding
	Details key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding

	Apply  key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:  key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "toggle field")),
		Reset:   key.NewBinding(key.WithKeys("x", "ctrl+r"), key.WithHelp("x", "reset")),
		Move:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
		Details: key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "details")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Apply:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep query")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear query")),
	}
}

// normalBindings is the footer in normal mode
func (k keyMap) normalBindings() []key.Binding {
	return []key.Binding{k.Search, k.Toggle, k.Reset, k.Move, k.Details, k.Reload, k.Help, k.Quit}
}

// searchBindings is the footer while editing the query
func (k keyMap) searchBindings() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel, k.Move}
}
