package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

var (
	validateProcess       string
	validateDate          string
	validateCourt         string
	validateCorrespondent string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a record against the save rules",
	Long: `Run the same checks the editor runs before saving: every field is required
and the date must look like YYYY-MM-DD. Nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateProcess, "process", "", "process number")
	validateCmd.Flags().StringVar(&validateDate, "date", "", "hearing date (YYYY-MM-DD)")
	validateCmd.Flags().StringVar(&validateCourt, "court", "", "court")
	validateCmd.Flags().StringVar(&validateCorrespondent, "correspondent", "", "correspondent")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if hearingValidator == nil {
		return errors.New("validator not configured")
	}

	err := hearingValidator.Validate(domain.Hearing{
		ProcessNumber: validateProcess,
		Date:          validateDate,
		Court:         validateCourt,
		Correspondent: validateCorrespondent,
	})

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s: %w", verr.Message(), err)
	}
	if err != nil {
		return err
	}

	cmd.Println("Registro válido.")
	return nil
}
