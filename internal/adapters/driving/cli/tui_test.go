package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_LongListsControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Search")
	assert.Contains(t, tuiCmd.Long, "Delete the selected record")
}

func TestSetTUIConfig(t *testing.T) {
	original := tuiConfig
	defer func() { tuiConfig = original }()

	config := &TUIConfig{LogDir: t.TempDir()}
	SetTUIConfig(config)

	assert.Equal(t, config, tuiConfig)
}

func TestTUICmd_WithoutSessionFails(t *testing.T) {
	original := tuiConfig
	defer func() { tuiConfig = original }()
	SetTUIConfig(nil)
	resetFlags()

	_, _, err := execute(t, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create TUI")
}

func TestMCPServeCmd_WithoutServicesFails(t *testing.T) {
	resetFlags()

	_, _, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hearing service is required")
}
