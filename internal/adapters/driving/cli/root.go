// Package cli provides the cobra command tree for the hearings binary.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// version is set by the composition root, usually from ldflags.
var version = "dev"

var verbose bool

// Services used by the commands. Set by the composition root before Execute.
var (
	hearingService   driving.HearingService
	viewService      driving.ViewService
	hearingValidator driving.HearingValidator
	settingsService  driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "hearings",
	Short: "Paginated, searchable table of legal hearings",
	Long: `hearings keeps a table of legal-hearing records (process number, date,
court and correspondent) in memory for the lifetime of the process.

Run "hearings tui" for the interactive table, or use the list and validate
commands from scripts. Records are loaded from the seed set on start-up and
are never written back.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetHearingService sets the mutation service.
func SetHearingService(svc driving.HearingService) {
	hearingService = svc
}

// SetViewService sets the page projector.
func SetViewService(svc driving.ViewService) {
	viewService = svc
}

// SetHearingValidator sets the save validator.
func SetHearingValidator(v driving.HearingValidator) {
	hearingValidator = v
}

// SetSettingsService sets the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}
