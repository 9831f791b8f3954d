package driving

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// TableSession owns the transient state of the table surface and
// turns user intents into service calls. It is not safe for concurrent use.
type TableSession interface {
	// Refresh re-derives the current page from the store.
	Refresh(ctx context.Context) (domain.Page, error)

	// Search filters by term and returns to page 1.
	Search(ctx context.Context, term string) (domain.Page, error)

	// ClearSearch drops the filter and returns to page 1.
	ClearSearch(ctx context.Context) (domain.Page, error)

	// GoToPage moves to page n, clamped to the available pages.
	GoToPage(ctx context.Context, n int) (domain.Page, error)

	// NextPage moves forward one page if possible.
	NextPage(ctx context.Context) (domain.Page, error)

	// PrevPage moves back one page if possible.
	PrevPage(ctx context.Context) (domain.Page, error)

	// SetPageSize changes the rows per page and returns to page 1.
	SetPageSize(ctx context.Context, size int) (domain.Page, error)

	// BeginAdd opens the editor with an empty draft.
	BeginAdd() error

	// BeginEdit opens the editor on the record at a visible row.
	BeginEdit(row int) error

	// UpdateDraft replaces the edit buffer.
	UpdateDraft(draft domain.Hearing) error

	// Save validates the draft and inserts or replaces the record.
	// A *domain.ValidationError leaves the editor open with the buffer intact.
	Save(ctx context.Context) (domain.Hearing, error)

	// Cancel closes the editor or drops a pending confirmation.
	Cancel()

	// RequestDelete asks for confirmation to delete the record at a visible row.
	RequestDelete(row int) (domain.PendingAction, error)

	// ConfirmDelete performs the pending deletion and returns the removed record.
	ConfirmDelete(ctx context.Context) (domain.Hearing, error)

	// DeclineDelete drops the pending deletion without touching the store.
	DeclineDelete() error

	// Mode returns what the surface is doing.
	Mode() domain.SurfaceMode

	// Term returns the active search term.
	Term() string

	// Page returns the last derived page.
	Page() domain.Page

	// Draft returns the edit buffer.
	Draft() domain.Hearing

	// Pending returns the action awaiting confirmation, if any.
	Pending() (domain.PendingAction, bool)
}
