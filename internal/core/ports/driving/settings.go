package driving

import "github.com/custodia-labs/hearings-cli/internal/core/domain"

// SettingsService reads and updates application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.AppSettings

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// SetTheme stores the theme.
	SetTheme(theme domain.ThemeName) error

	// Reload re-reads settings from storage and returns them.
	Reload() (domain.AppSettings, error)
}
