// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the selector key bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	Remove      key.Binding
	Choose      key.Binding
	Destination key.Binding
	Generate    key.Binding
	Here        key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Choose, k.Destination, k.Generate, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Choose},
		{k.Add, k.Remove, k.Destination},
		{k.Generate, k.Here, k.Cancel, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "vorheriger Ordner"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "nächster Ordner"),
		),
		Add: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Ordner hinzufügen"),
		),
		Remove: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "letzten entfernen"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Bilder-Ordner.."),
		),
		Destination: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Output Ordner.."),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generieren"),
		),
		Here: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "diesen Ordner wählen"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "abbrechen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "beenden"),
		),
	}
}
