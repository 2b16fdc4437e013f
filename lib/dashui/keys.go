// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard TUI.
type KeyMap struct {
	// Navigation inside dropdowns and the history list.
	Up   key.Binding
	Down key.Binding

	// Overlays.
	Filter     key.Binding // Open the lote filter dropdown.
	History    key.Binding // Open the reading history overlay.
	Parameters key.Binding // Open the parameter form (administrators).

	// Form field cycling.
	NextField key.Binding
	PrevField key.Binding
	NewRecord key.Binding // Clear the form for a fresh record.

	Refresh key.Binding
	Select  key.Binding // Confirm a dropdown choice / search / submit.
	Dismiss key.Binding // Close the active overlay.
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filtrar lote"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "histórico"),
	),
	Parameters: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "parâmetros"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "próximo campo"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "campo anterior"),
	),
	NewRecord: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "novo"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "atualizar"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "confirmar"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "fechar"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "sair"),
	),
}
