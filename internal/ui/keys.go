package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// previewKeys holds key bindings for the preview viewport.
var previewKeys = viewport.KeyMap{
	Up:           key.NewBinding(key.WithKeys("k", "up")),
	Down:         key.NewBinding(key.WithKeys("j", "down")),
	HalfPageUp:   key.NewBinding(key.WithKeys("u")),
	HalfPageDown: key.NewBinding(key.WithKeys("d")),
}

// listKeyMap holds bindings active in the list view.
type listKeyMap struct {
	Enter     key.Binding
	Space     key.Binding
	Refresh   key.Binding
	Uninstall key.Binding
	Quit      key.Binding
}

// detailKeyMap holds bindings active in the detail view.
type detailKeyMap struct {
	Enter       key.Binding
	Esc         key.Binding
	PreviewUp   key.Binding
	PreviewDown key.Binding
	Quit        key.Binding
}

// confirmKeyMap holds bindings active in the warning dialog.
type confirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "detail"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		Uninstall: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "uninstall"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newDetailKeyMap() *detailKeyMap {
	return &detailKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc", " "),
			key.WithHelp("esc", "back"),
		),
		PreviewUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "preview up"),
		),
		PreviewDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "preview down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newConfirmKeyMap() *confirmKeyMap {
	return &confirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc", "q", "ctrl+c"),
			key.WithHelp("n", "no"),
		),
	}
}

// ShortHelp implements help.KeyMap for the list view.
func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Space, k.Refresh, k.Uninstall, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Space, k.Refresh},
		{k.Uninstall, k.Quit},
	}
}

// ShortHelp implements help.KeyMap for the detail view.
func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.PreviewUp, k.PreviewDown, k.Esc, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.PreviewUp, k.PreviewDown},
		{k.Esc, k.Quit},
	}
}
