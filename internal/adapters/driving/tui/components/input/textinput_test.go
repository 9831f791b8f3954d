package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driving/tui/styles"
)

func typeRunes(t *testing.T, s *SearchInput, text string) bool {
	t.Helper()
	changed := false
	for _, r := range text {
		var c bool
		s, _, c = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || c
	}
	return changed
}

func TestNewSearchInput(t *testing.T) {
	s := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, s)
	assert.False(t, s.Focused())
	assert.False(t, s.Disabled())
	assert.Empty(t, s.Value())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	s := NewSearchInput(nil)

	require.NotNil(t, s)
	assert.NotNil(t, s.styles)
}

func TestSearchInput_Init(t *testing.T) {
	s := NewSearchInput(nil)

	assert.NotNil(t, s.Init())
}

func TestSearchInput_TypingReportsChange(t *testing.T) {
	s := NewSearchInput(nil)
	s.Focus()

	assert.True(t, typeRunes(t, s, "tjsp"))
	assert.Equal(t, "tjsp", s.Value())
}

func TestSearchInput_NonEditingKeyIsNotAChange(t *testing.T) {
	s := NewSearchInput(nil)
	s.Focus()

	_, _, changed := s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, changed)
}

func TestSearchInput_Disabled(t *testing.T) {
	s := NewSearchInput(nil)
	s.Focus()
	s.SetDisabled(true)

	assert.True(t, s.Disabled())
	assert.False(t, s.Focused())
	assert.Nil(t, s.Focus())
	assert.False(t, s.Focused())

	assert.False(t, typeRunes(t, s, "abc"))
	assert.Empty(t, s.Value())
	assert.Contains(t, s.View(), "Pesquisar")

	s.SetDisabled(false)
	s.Focus()
	assert.True(t, typeRunes(t, s, "x"))
}

func TestSearchInput_SetValueAndReset(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetValue("alice")
	assert.Equal(t, "alice", s.Value())

	s.Reset()
	assert.Empty(t, s.Value())
}

func TestSearchInput_SetWidth(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetWidth(100)
	assert.Equal(t, 100, s.Width())
	assert.Equal(t, 84, s.textinput.Width)

	s.SetWidth(10)
	assert.Equal(t, 20, s.textinput.Width)
}

func TestSearchInput_View(t *testing.T) {
	s := NewSearchInput(nil)
	s.SetValue("123")

	assert.Contains(t, s.View(), "123")
}
