package domain

// ThemeName selects a colour scheme for the TUI.
type ThemeName string

// Available themes.
const (
	// ThemeLight uses dark text on a light background.
	ThemeLight ThemeName = "light"

	// ThemeDark uses light text on a dark background.
	ThemeDark ThemeName = "dark"

	// ThemeAuto follows the terminal background.
	ThemeAuto ThemeName = "auto"
)

// IsValid returns true if the theme is recognised.
func (t ThemeName) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	default:
		return false
	}
}

// Next returns the theme that follows t when cycling light -> dark -> auto.
func (t ThemeName) Next() ThemeName {
	switch t {
	case ThemeLight:
		return ThemeDark
	case ThemeDark:
		return ThemeAuto
	default:
		return ThemeLight
	}
}

// StorageBackend selects the record store implementation.
type StorageBackend string

// Available storage backends. Both keep records in memory only.
const (
	// BackendMemory is a plain slice guarded by a mutex.
	BackendMemory StorageBackend = "memory"

	// BackendSQLite is an in-memory SQLite database.
	BackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == BackendMemory || b == BackendSQLite
}

// Config keys understood by the settings service.
const (
	KeyTheme    = "ui.theme"
	KeyPageSize = "ui.page_size"
	KeySeedFile = "data.seed_file"
	KeyBackend  = "storage.backend"
)

// SettingKeys lists every configurable key in display order.
func SettingKeys() []string {
	return []string{KeyTheme, KeyPageSize, KeySeedFile, KeyBackend}
}

// AppSettings holds user-tunable behaviour.
type AppSettings struct {
	Theme    ThemeName
	PageSize int
	SeedFile string
	Backend  StorageBackend
}

// DefaultAppSettings returns settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Theme:    ThemeAuto,
		PageSize: DefaultPageSize,
		Backend:  BackendMemory,
	}
}
