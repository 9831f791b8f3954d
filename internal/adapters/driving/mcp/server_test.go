package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("missing hearing service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingHearingService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(newTestPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	full := newTestPorts()

	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{name: "empty", ports: &Ports{}, wantErr: ErrMissingHearingService},
		{name: "missing views", ports: &Ports{Hearings: full.Hearings}, wantErr: ErrMissingViewService},
		{
			name:    "missing validator",
			ports:   &Ports{Hearings: full.Hearings, Views: full.Views},
			wantErr: ErrMissingValidator,
		},
		{name: "all ports", ports: full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
