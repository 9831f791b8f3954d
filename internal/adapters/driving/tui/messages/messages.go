// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// RefreshRequested asks the table to re-derive its page from the store.
type RefreshRequested struct{}

// SettingsChanged is sent when the config file was edited outside the TUI.
type SettingsChanged struct{}

// ThemeCycleRequested asks the app to move to the next theme.
type ThemeCycleRequested struct{}

// ThemeChanged reports the theme now in use.
type ThemeChanged struct {
	Theme domain.ThemeName
	Err   error
}

// HearingSaved reports a record written from the editor.
type HearingSaved struct {
	Hearing domain.Hearing
	Mode    domain.SurfaceMode
}

// HearingDeleted reports a record removed after confirmation.
type HearingDeleted struct {
	Hearing domain.Hearing
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
