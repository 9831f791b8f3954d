package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// ListInput is the input schema for the list_hearings tool.
type ListInput struct {
	Search   string `json:"search,omitempty" jsonschema:"case-insensitive term matched against every field"`
	Page     int    `json:"page,omitempty" jsonschema:"1-based page number (default 1)"`
	PageSize int    `json:"page_size,omitempty" jsonschema:"rows per page (default 5)"`
}

// ListOutput is the output schema for the list_hearings tool.
type ListOutput struct {
	Hearings []HearingOutput `json:"hearings"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
	Total    int             `json:"total"`
}

// HearingInput carries the four editable fields.
type HearingInput struct {
	ProcessNumber string `json:"process_number" jsonschema:"process number"`
	Date          string `json:"date" jsonschema:"hearing date as YYYY-MM-DD"`
	Court         string `json:"court" jsonschema:"court"`
	Correspondent string `json:"correspondent" jsonschema:"correspondent"`
}

// UpdateInput is the input schema for the update_hearing tool.
type UpdateInput struct {
	ID            string `json:"id" jsonschema:"ID of the record to replace"`
	ProcessNumber string `json:"process_number" jsonschema:"process number"`
	Date          string `json:"date" jsonschema:"hearing date as YYYY-MM-DD"`
	Court         string `json:"court" jsonschema:"court"`
	Correspondent string `json:"correspondent" jsonschema:"correspondent"`
}

// DeleteInput is the input schema for the delete_hearing tool.
type DeleteInput struct {
	ID      string `json:"id" jsonschema:"ID of the record to delete"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"must be true to actually delete"`
}

// DeleteOutput is the output schema for the delete_hearing tool.
type DeleteOutput struct {
	Deleted bool          `json:"deleted"`
	Prompt  string        `json:"prompt,omitempty"`
	Hearing HearingOutput `json:"hearing"`
}

// HearingOutput represents a single record.
type HearingOutput struct {
	ID            string `json:"id"`
	ProcessNumber string `json:"process_number"`
	Date          string `json:"date"`
	Court         string `json:"court"`
	Correspondent string `json:"correspondent"`
}

func toOutput(h domain.Hearing) HearingOutput {
	return HearingOutput{
		ID:            h.ID,
		ProcessNumber: h.ProcessNumber,
		Date:          h.Date,
		Court:         h.Court,
		Correspondent: h.Correspondent,
	}
}

func (in HearingInput) hearing() domain.Hearing {
	return domain.Hearing{
		ProcessNumber: in.ProcessNumber,
		Date:          in.Date,
		Court:         in.Court,
		Correspondent: in.Correspondent,
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_hearings",
		Description: "List one page of hearings, optionally filtered by a search term",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_hearing",
		Description: "Add a hearing. Every field is required and the date must be YYYY-MM-DD",
	}, s.handleAdd)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_hearing",
		Description: "Replace the fields of an existing hearing",
	}, s.handleUpdate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_hearing",
		Description: "Delete a hearing. Without confirm=true the record is returned and nothing is deleted",
	}, s.handleDelete)
}

func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	page, err := s.ports.Views.Project(ctx, domain.PageQuery{
		Term: input.Search,
		Page: input.Page,
		Size: input.PageSize,
	})
	if err != nil {
		return nil, ListOutput{}, fmt.Errorf("listing hearings: %w", err)
	}

	output := ListOutput{
		Hearings: make([]HearingOutput, len(page.Items)),
		Page:     page.Number,
		Pages:    page.Count,
		Total:    page.Total,
	}
	for i, h := range page.Items {
		output.Hearings[i] = toOutput(h)
	}

	return nil, output, nil
}

func (s *Server) handleAdd(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HearingInput,
) (*mcp.CallToolResult, HearingOutput, error) {
	h := input.hearing()
	if err := s.validate(h); err != nil {
		return nil, HearingOutput{}, err
	}

	saved, err := s.ports.Hearings.Insert(ctx, h)
	if err != nil {
		return nil, HearingOutput{}, fmt.Errorf("adding hearing: %w", err)
	}
	return nil, toOutput(saved), nil
}

func (s *Server) handleUpdate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateInput,
) (*mcp.CallToolResult, HearingOutput, error) {
	if input.ID == "" {
		return nil, HearingOutput{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}

	h := domain.Hearing{
		ID:            input.ID,
		ProcessNumber: input.ProcessNumber,
		Date:          input.Date,
		Court:         input.Court,
		Correspondent: input.Correspondent,
	}
	if err := s.validate(h); err != nil {
		return nil, HearingOutput{}, err
	}

	saved, err := s.ports.Hearings.ReplaceByID(ctx, input.ID, h)
	if err != nil {
		return nil, HearingOutput{}, fmt.Errorf("updating hearing %s: %w", input.ID, err)
	}
	return nil, toOutput(saved), nil
}

func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if input.ID == "" {
		return nil, DeleteOutput{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}

	if !input.Confirm {
		h, err := s.ports.Hearings.Get(ctx, input.ID)
		if err != nil {
			return nil, DeleteOutput{}, fmt.Errorf("getting hearing %s: %w", input.ID, err)
		}
		pending := domain.PendingAction{Kind: domain.ActionDelete, Record: *h}
		return nil, DeleteOutput{Prompt: pending.Prompt(), Hearing: toOutput(*h)}, nil
	}

	removed, err := s.ports.Hearings.RemoveByID(ctx, input.ID)
	if err != nil {
		return nil, DeleteOutput{}, fmt.Errorf("deleting hearing %s: %w", input.ID, err)
	}
	return nil, DeleteOutput{Deleted: true, Hearing: toOutput(removed)}, nil
}

// validate runs the save rules and puts the user-facing message in the error text.
func (s *Server) validate(h domain.Hearing) error {
	err := s.ports.Validator.Validate(h)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s: %w", verr.Message(), err)
	}
	return err
}
