// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// State represents what the status bar is reporting.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateEditing   State = "editing"
	StateConfirm   State = "confirm"
	StateSuccess   State = "success"
	StateError     State = "error"
)

// Bar displays the page position, the last outcome and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	page    domain.Page
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(s.message)
		}
		return s.styles.Error.Render("Erro")
	case StateConfirm:
		return s.styles.Warning.Render(s.message)
	case StateSuccess:
		return s.styles.Success.Render(s.message)
	case StateEditing:
		return s.styles.Normal.Render(s.message)
	case StateReady, StateSearching:
	}
	return s.styles.Muted.Render(s.pageSummary())
}

func (s *Bar) pageSummary() string {
	if s.page.Total == 0 {
		if s.page.Query != "" {
			return fmt.Sprintf("Nenhum registro para %q", s.page.Query)
		}
		return "Nenhum registro"
	}
	return fmt.Sprintf("Página %d de %d · %d registros", s.page.Number, s.page.LastPage(), s.page.Total)
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateSearching:
		bindings = s.keymap.SearchHelp()
	case StateEditing:
		bindings = s.keymap.EditorHelp()
	case StateConfirm:
		bindings = s.keymap.ConfirmHelp()
	default:
		bindings = s.keymap.BrowseHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return s.styles.Help.Render(strings.Join(hints, " · "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the text shown on the left.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetPage records the page the summary describes.
func (s *Bar) SetPage(page domain.Page) {
	s.page = page
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear returns to the ready state and drops the message.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
