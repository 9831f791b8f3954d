package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHearingID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid hearing URI", uri: "hearings://hearings/h-123", expected: "h-123"},
		{name: "invalid prefix", uri: "file://hearings/h-123", expected: ""},
		{name: "nested path", uri: "hearings://hearings/h-123/extra", expected: ""},
		{name: "list URI", uri: "hearings://hearings", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractHearingID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleHearingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all records in store order", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(testHearings()...))

		result, err := server.handleHearingsResource(ctx, makeReadResourceRequest("hearings://hearings"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var got []HearingOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "h1", got[0].ID)
		assert.Equal(t, "h2", got[1].ID)
	})

	t.Run("empty store returns empty array", func(t *testing.T) {
		server := newTestServer(t, newTestPorts())

		result, err := server.handleHearingsResource(ctx, makeReadResourceRequest("hearings://hearings"))

		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on store failure", func(t *testing.T) {
		ports := newTestPorts()
		ports.Hearings = &failingHearingService{err: errors.New("store down")}
		server := newTestServer(t, ports)

		_, err := server.handleHearingsResource(ctx, makeReadResourceRequest("hearings://hearings"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleHearingResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns one record", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(testHearings()...))

		result, err := server.handleHearingResource(ctx, makeReadResourceRequest("hearings://hearings/h2"))

		require.NoError(t, err)
		var got HearingOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &got))
		assert.Equal(t, "456", got.ProcessNumber)
		assert.Equal(t, "TJRJ", got.Court)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(testHearings()...))

		_, err := server.handleHearingResource(ctx, makeReadResourceRequest("hearings://hearings/nope"))

		assert.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		server := newTestServer(t, newTestPorts(testHearings()...))

		_, err := server.handleHearingResource(ctx, makeReadResourceRequest("hearings://other/h1"))

		assert.Error(t, err)
	})
}
