package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Invalid stored values fall back to defaults.
func (s *SettingsService) Get() domain.AppSettings {
	settings := domain.DefaultAppSettings()
	if s.configStore == nil {
		return settings
	}

	if theme := domain.ThemeName(s.configStore.GetString(domain.KeyTheme)); theme.IsValid() {
		settings.Theme = theme
	}
	if size := s.configStore.GetInt(domain.KeyPageSize); size > 0 {
		settings.PageSize = size
	}
	settings.SeedFile = s.configStore.GetString(domain.KeySeedFile)
	if backend := domain.StorageBackend(s.configStore.GetString(domain.KeyBackend)); backend.IsValid() {
		settings.Backend = backend
	}

	return settings
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	var stored any
	switch key {
	case domain.KeyTheme:
		if !domain.ThemeName(value).IsValid() {
			return fmt.Errorf("unknown theme %q: %w", value, domain.ErrInvalidInput)
		}
		stored = value
	case domain.KeyPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("page size must be a positive integer, got %q: %w", value, domain.ErrInvalidInput)
		}
		stored = n
	case domain.KeySeedFile:
		stored = value
	case domain.KeyBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("unknown storage backend %q: %w", value, domain.ErrInvalidInput)
		}
		stored = value
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetTheme stores the theme.
func (s *SettingsService) SetTheme(theme domain.ThemeName) error {
	return s.Set(domain.KeyTheme, string(theme))
}

// Reload re-reads settings from storage.
func (s *SettingsService) Reload() (domain.AppSettings, error) {
	if s.configStore == nil {
		return domain.DefaultAppSettings(), nil
	}
	if err := s.configStore.Load(); err != nil {
		return s.Get(), fmt.Errorf("reload config: %w", err)
	}
	return s.Get(), nil
}
