package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	Session  driving.TableSession
	Settings driving.SettingsService

	// Watcher reports edits to the config file. Optional.
	Watcher driven.ConfigWatcher

	// LogDir receives the log file while the TUI owns the terminal.
	LogDir string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive table",
	Long: `Launch the interactive hearing table.

Controls:
  ↑/↓        Move between rows
  ←/→        Previous / next page
  /          Search (esc to leave the input)
  x          Clear search
  a          Add a record
  e, enter   Edit the selected record
  d          Delete the selected record (asks first)
  t          Cycle theme (light, dark, auto)
  q          Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports.Session = tuiConfig.Session
		ports.Settings = tuiConfig.Settings
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if logger.IsVerbose() && tuiConfig.LogDir != "" {
		restore, err := logger.ToFile(filepath.Join(tuiConfig.LogDir, logger.LogFileName))
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() { _ = restore() }()
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if tuiConfig.Watcher != nil {
		go func() {
			err := tuiConfig.Watcher.Watch(ctx, func() {
				p.Send(messages.SettingsChanged{})
			})
			if err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
