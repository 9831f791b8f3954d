package messages

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

func TestMessages_AreTeaMsgs(t *testing.T) {
	msgs := []tea.Msg{
		RefreshRequested{},
		SettingsChanged{},
		ThemeCycleRequested{},
		ThemeChanged{Theme: domain.ThemeDark},
		HearingSaved{Hearing: domain.Hearing{ID: "h1"}, Mode: domain.ModeAdd},
		HearingDeleted{Hearing: domain.Hearing{ID: "h1"}},
		ErrorOccurred{Err: errors.New("x")},
	}

	for _, m := range msgs {
		assert.NotNil(t, m)
	}
}

func TestMessages_TypeSwitch(t *testing.T) {
	var msg tea.Msg = HearingDeleted{Hearing: domain.Hearing{ID: "h9"}}

	switch m := msg.(type) {
	case HearingDeleted:
		assert.Equal(t, "h9", m.Hearing.ID)
	default:
		t.Fatalf("unexpected type %T", msg)
	}
}
