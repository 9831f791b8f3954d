package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in config.toml.

Keys:
  ui.theme         light, dark or auto
  ui.page_size     rows per page (at least 1)
  data.seed_file   JSON file to load records from (empty = built-in set)
  storage.backend  memory or sqlite`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()

	seedFile := settings.SeedFile
	if seedFile == "" {
		seedFile = "(built-in)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[UI]")
	cmd.Printf("  Theme: %s\n", settings.Theme)
	cmd.Printf("  Page size: %d\n", settings.PageSize)
	cmd.Println()
	cmd.Println("[Data]")
	cmd.Printf("  Seed file: %s\n", seedFile)
	cmd.Println()
	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Backend)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := strings.TrimSpace(args[0])
	if err := settingsService.Set(key, args[1]); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("invalid setting %s=%q: %w", key, args[1], err)
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, args[1])
	return nil
}
