package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

func TestValidateCmd_Valid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "validate",
		"--process", "1", "--date", "2024-01-01", "--court", "X", "--correspondent", "Y")

	require.NoError(t, err)
	assert.Contains(t, out, "Registro válido.")
}

func TestValidateCmd_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "missing process number",
			args:    []string{"--date", "2024-01-01", "--court", "X", "--correspondent", "Y"},
			message: "Todos os campos são obrigatórios. Preencha todos antes de salvar.",
		},
		{
			name:    "day-first date",
			args:    []string{"--process", "1", "--date", "01-01-2024", "--court", "X", "--correspondent", "Y"},
			message: "Formato de data inválido. Utilize o formato YYYY-MM-DD.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			_, errOut, err := execute(t, append([]string{"validate"}, tt.args...)...)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, 1, strings.Count(errOut, tt.message))
		})
	}
}

func TestValidateCmd_NotConfigured(t *testing.T) {
	resetFlags()

	_, _, err := execute(t, "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validator not configured")
}
