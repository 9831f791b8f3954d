// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name is the setting value this palette was built for.
	Name domain.ThemeName

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeDark,
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// LightTheme returns the palette for light terminals.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeLight,
		Primary:    lipgloss.Color("#5B21B6"),
		Secondary:  lipgloss.Color("#0E7490"),
		Background: lipgloss.Color("#EFF1F5"),
		Foreground: lipgloss.Color("#4C4F69"),
		Muted:      lipgloss.Color("#8C8FA1"),
		Success:    lipgloss.Color("#40A02B"),
		Warning:    lipgloss.Color("#DF8E1D"),
		Error:      lipgloss.Color("#D20F39"),
		Border:     lipgloss.Color("#BCC0CC"),
	}
}

// ThemeFor resolves a theme setting to a palette. Auto asks the terminal
// for its background colour; unknown names get the dark palette.
func ThemeFor(name domain.ThemeName) *Theme {
	switch name {
	case domain.ThemeLight:
		return LightTheme()
	case domain.ThemeAuto:
		var t *Theme
		if lipgloss.HasDarkBackground() {
			t = DarkTheme()
		} else {
			t = LightTheme()
		}
		t.Name = domain.ThemeAuto
		return t
	default:
		return DarkTheme()
	}
}

// Styles contains pre-configured lipgloss styles.
// Views share one *Styles; Apply restyles all of them at once.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// Disabled style for inputs that do not accept keys.
	Disabled lipgloss.Style

	// TableHeader style for column titles.
	TableHeader lipgloss.Style

	// TableCell style for table cells.
	TableCell lipgloss.Style

	// Dialog style for the editor and confirmation boxes.
	Dialog lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	s := &Styles{}
	s.Apply(theme)
	return s
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() *Styles {
	return NewStyles(DarkTheme())
}

// Apply rebuilds every style from theme in place.
func (s *Styles) Apply(theme *Theme) {
	if theme == nil {
		theme = DarkTheme()
	}
	s.theme = theme

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	s.Subtitle = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	s.Normal = lipgloss.NewStyle().Foreground(theme.Foreground)
	s.Muted = lipgloss.NewStyle().Foreground(theme.Muted)
	s.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Background).
		Background(theme.Primary)
	s.Error = lipgloss.NewStyle().Bold(true).Foreground(theme.Error)
	s.Success = lipgloss.NewStyle().Foreground(theme.Success)
	s.Warning = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	s.InputField = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	s.Disabled = s.InputField.
		Foreground(theme.Muted).
		BorderForeground(theme.Muted)
	s.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Padding(0, 1)
	s.TableCell = lipgloss.NewStyle().Foreground(theme.Foreground).Padding(0, 1)
	s.Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(theme.Foreground).Padding(0, 1)
	s.Help = lipgloss.NewStyle().Foreground(theme.Muted)
	s.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
