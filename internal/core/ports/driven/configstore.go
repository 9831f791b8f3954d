package driven

import "context"

// ConfigStore provides access to application configuration.
// Keys use dot notation ("ui.theme"). Implementations handle persistence
// (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the configuration file path, or "" when not file-backed.
	Path() string
}

// ConfigWatcher reports changes made to the configuration outside the process.
type ConfigWatcher interface {
	// Watch calls onChange after each change until ctx is cancelled.
	// It blocks; run it in its own goroutine.
	Watch(ctx context.Context, onChange func()) error
}
