// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Up and Down move the row cursor.
	Up   key.Binding
	Down key.Binding

	// PrevPage and NextPage move between pages.
	PrevPage key.Binding
	NextPage key.Binding

	// Search focuses the search input.
	Search key.Binding

	// ClearSearch empties the search input and shows every record.
	ClearSearch key.Binding

	// Add opens the editor on a new record.
	Add key.Binding

	// Edit opens the editor on the selected record.
	Edit key.Binding

	// Delete asks to delete the selected record.
	Delete key.Binding

	// Theme cycles light, dark and auto.
	Theme key.Binding

	// NextField and PrevField move focus inside the editor.
	NextField key.Binding
	PrevField key.Binding

	// Save stores the editor contents.
	Save key.Binding

	// Confirm and Decline answer a confirmation prompt.
	Confirm key.Binding
	Decline key.Binding

	// Cancel closes the editor or leaves the search input.
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "acima"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "abaixo"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "página anterior"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "próxima página"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "pesquisar"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x", "ctrl+x"),
			key.WithHelp("x", "limpar"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "adicionar"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "editar"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "excluir"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tema"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "próximo campo"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "campo anterior"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "salvar"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "s", "enter"),
			key.WithHelp("s", "sim"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "não"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancelar"),
		),
	}
}

// BrowseHelp returns the hints shown while the table has focus.
func (k *KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.Edit, k.Delete, k.PrevPage, k.NextPage, k.Theme, k.Quit}
}

// SearchHelp returns the hints shown while typing a search.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Cancel}
}

// EditorHelp returns the hints shown while the editor is open.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Save, k.Cancel}
}

// ConfirmHelp returns the hints shown while a confirmation is pending.
func (k *KeyMap) ConfirmHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Decline}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
