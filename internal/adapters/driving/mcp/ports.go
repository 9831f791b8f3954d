package mcp

import (
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Hearings mutates the record store.
	Hearings driving.HearingService

	// Views projects filtered pages.
	Views driving.ViewService

	// Validator checks records before they are written.
	Validator driving.HearingValidator
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Hearings == nil {
		return ErrMissingHearingService
	}
	if p.Views == nil {
		return ErrMissingViewService
	}
	if p.Validator == nil {
		return ErrMissingValidator
	}
	return nil
}
