// Package mcp provides an MCP (Model Context Protocol) server adapter for the hearing table.
// It lets AI assistants list, add, update and delete records over stdio.
package mcp

import "errors"

// ErrMissingHearingService is returned when the hearing service is not provided.
var ErrMissingHearingService = errors.New("mcp: hearing service is required")

// ErrMissingViewService is returned when the view service is not provided.
var ErrMissingViewService = errors.New("mcp: view service is required")

// ErrMissingValidator is returned when the hearing validator is not provided.
var ErrMissingValidator = errors.New("mcp: hearing validator is required")
