package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/views/hearings"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// WindowTitle is the terminal title set on start.
const WindowTitle = "Tabela Jurídica"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles is shared by every component and mutated in place on theme changes.
	styles *styles.Styles

	// view is the hearings table view.
	view *hearings.View

	// theme is the configured theme name, which may be auto.
	theme domain.ThemeName

	// pageSize is the page size last applied to the session.
	pageSize int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		settings = ports.Settings.Get()
	}

	s := styles.NewStyles(styles.ThemeFor(settings.Theme))

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		view:     hearings.NewView(s, keymap.DefaultKeyMap(), ports.Session),
		theme:    settings.Theme,
		pageSize: settings.PageSize,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.view.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(WindowTitle),
		a.view.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.view.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.view, cmd = a.view.Update(msg)
		return a, cmd

	case messages.ThemeCycleRequested:
		return a, a.cycleTheme()

	case messages.ThemeChanged:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("Failed to save theme %s: %v", msg.Theme, msg.Err)
		}
		return a, nil

	case messages.SettingsChanged:
		return a, a.reloadSettings()

	case messages.HearingSaved:
		logger.Info("Saved hearing %s (%s)", msg.Hearing.ID, msg.Mode)
		return a, nil

	case messages.HearingDeleted:
		logger.Info("Deleted hearing %s", msg.Hearing.ID)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// cycleTheme moves to the next theme, restyles and persists the choice.
func (a *App) cycleTheme() tea.Cmd {
	next := a.theme.Next()
	a.applyTheme(next)

	var err error
	if a.ports.Settings != nil {
		err = a.ports.Settings.SetTheme(next)
	}
	return func() tea.Msg { return messages.ThemeChanged{Theme: next, Err: err} }
}

func (a *App) applyTheme(name domain.ThemeName) {
	a.theme = name
	a.styles.Apply(styles.ThemeFor(name))
}

// reloadSettings re-reads the config after an outside edit.
func (a *App) reloadSettings() tea.Cmd {
	if a.ports.Settings == nil {
		return nil
	}

	settings, err := a.ports.Settings.Reload()
	if err != nil {
		a.err = err
		logger.Warn("Failed to reload settings: %v", err)
		return nil
	}

	if settings.Theme != a.theme {
		a.applyTheme(settings.Theme)
	}
	if settings.PageSize == a.pageSize {
		return nil
	}

	a.pageSize = settings.PageSize
	if _, err := a.ports.Session.SetPageSize(a.ctx, settings.PageSize); err != nil {
		a.err = err
		return nil
	}
	return func() tea.Msg { return messages.RefreshRequested{} }
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Carregando..."
	}
	return a.view.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Theme returns the configured theme name.
func (a *App) Theme() domain.ThemeName {
	return a.theme
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.view.SetDimensions(width, height)
}
