package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

func typeInto(f *Form, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNew(t *testing.T) {
	f := New(styles.DefaultStyles())

	require.NotNil(t, f)
	assert.Len(t, f.inputs, 4)
	assert.Equal(t, domain.FieldProcessNumber, f.Focused())
	assert.Equal(t, domain.Hearing{}, f.Hearing())
}

func TestForm_OpenLoadsRecord(t *testing.T) {
	f := New(nil)
	h := domain.Hearing{ID: "h1", ProcessNumber: "123", Date: "2024-01-01", Court: "TJSP", Correspondent: "Alice"}

	f.Open("Editar registro", h)

	got := f.Hearing()
	assert.True(t, h.SameFields(got))
	assert.Empty(t, got.ID)
	assert.True(t, f.inputs[0].Focused())
	assert.Contains(t, f.View(), "Editar registro")
}

func TestForm_TypingGoesToFocusedField(t *testing.T) {
	f := New(nil)
	f.Open("Novo registro", domain.Hearing{})

	typeInto(f, "42")
	f.Next()
	typeInto(f, "2024-05-05")
	f.Next()
	typeInto(f, "TJRJ")
	f.Next()
	typeInto(f, "Bob")

	assert.Equal(t, domain.Hearing{ProcessNumber: "42", Date: "2024-05-05", Court: "TJRJ", Correspondent: "Bob"}, f.Hearing())
}

func TestForm_FocusWraps(t *testing.T) {
	f := New(nil)
	f.Open("x", domain.Hearing{})

	f.Prev()
	assert.Equal(t, domain.FieldCorrespondent, f.Focused())
	f.Next()
	assert.Equal(t, domain.FieldProcessNumber, f.Focused())

	f.FocusField(domain.FieldDate)
	assert.Equal(t, domain.FieldDate, f.Focused())
	assert.False(t, f.inputs[0].Focused())
	assert.True(t, f.inputs[1].Focused())
}

func TestForm_DateCharLimit(t *testing.T) {
	f := New(nil)
	f.Open("x", domain.Hearing{})
	f.FocusField(domain.FieldDate)

	typeInto(f, "2024-01-01-extra")

	assert.Equal(t, "2024-01-01", f.Hearing().Date)
}

func TestForm_Error(t *testing.T) {
	f := New(nil)
	f.SetWidth(100)
	f.Open("x", domain.Hearing{})

	f.SetError("Todos os campos são obrigatórios. Preencha todos antes de salvar.")
	assert.Contains(t, f.View(), "Todos os campos")
	assert.NotEmpty(t, f.Error())

	f.Open("y", domain.Hearing{})
	assert.Empty(t, f.Error())
}

func TestForm_Close(t *testing.T) {
	f := New(nil)
	f.Open("x", domain.Hearing{})
	f.SetError("boom")

	f.Close()

	for i := range f.inputs {
		assert.False(t, f.inputs[i].Focused())
	}
	assert.Empty(t, f.Error())
}
