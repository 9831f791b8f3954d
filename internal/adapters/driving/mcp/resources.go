package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for hearing resources.
	uriScheme = "hearings://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "hearings",
		Name:        "hearings",
		Description: "Every hearing in store order",
		MIMEType:    "application/json",
	}, s.handleHearingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "hearings/{hearingId}",
		Name:        "hearing",
		Description: "A single hearing by ID",
		MIMEType:    "application/json",
	}, s.handleHearingResource)
}

// handleHearingsResource returns every record.
func (s *Server) handleHearingsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Hearings.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing hearings: %w", err)
	}

	infos := make([]HearingOutput, len(records))
	for i, h := range records {
		infos[i] = toOutput(h)
	}
	return jsonResult(req.Params.URI, infos)
}

// handleHearingResource returns one record.
func (s *Server) handleHearingResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractHearingID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	h, err := s.ports.Hearings.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting hearing: %w", err)
	}
	return jsonResult(req.Params.URI, toOutput(*h))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractHearingID extracts the record ID from a URI like hearings://hearings/{hearingId}.
func extractHearingID(uri string) string {
	const prefix = uriScheme + "hearings/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
