package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"prev page", km.PrevPage, []string{"left", "h"}},
		{"next page", km.NextPage, []string{"right", "l"}},
		{"search", km.Search, []string{"/"}},
		{"clear", km.ClearSearch, []string{"x", "ctrl+x"}},
		{"add", km.Add, []string{"a"}},
		{"edit", km.Edit, []string{"e", "enter"}},
		{"delete", km.Delete, []string{"d"}},
		{"theme", km.Theme, []string{"t"}},
		{"save", km.Save, []string{"enter", "ctrl+s"}},
		{"confirm", km.Confirm, []string{"y", "s", "enter"}},
		{"decline", km.Decline, []string{"n", "esc"}},
		{"cancel", km.Cancel, []string{"esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.BrowseHelp(), 8)
	assert.Equal(t, []key.Binding{km.Cancel}, km.SearchHelp())
	assert.Len(t, km.EditorHelp(), 4)
	assert.Equal(t, []key.Binding{km.Confirm, km.Decline}, km.ConfirmHelp())
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
	assert.True(t, Matches("tab", km.NextField))
	assert.False(t, Matches("tab", km.PrevField))
}

func TestMatches_EmptyBinding(t *testing.T) {
	assert.False(t, Matches("q", key.Binding{}))
}
