package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// Ensure TableSession implements the interface.
var _ driving.TableSession = (*TableSession)(nil)

// TableSession holds what the table surface is currently showing and
// what the user is in the middle of doing. Rows handed in by the UI are
// positions on the last derived page; the session resolves them to record
// IDs before calling the mutation service.
type TableSession struct {
	hearings  driving.HearingService
	views     driving.ViewService
	validator driving.HearingValidator

	term     string
	pageNum  int
	pageSize int

	mode      domain.SurfaceMode
	draft     domain.Hearing
	editingID string
	pending   *domain.PendingAction

	page domain.Page
}

// NewTableSession creates a session in browse mode on page 1.
func NewTableSession(
	hearings driving.HearingService,
	views driving.ViewService,
	validator driving.HearingValidator,
	pageSize int,
) *TableSession {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &TableSession{
		hearings:  hearings,
		views:     views,
		validator: validator,
		pageNum:   1,
		pageSize:  pageSize,
		mode:      domain.ModeBrowse,
	}
}

// Refresh re-derives the current page.
func (s *TableSession) Refresh(ctx context.Context) (domain.Page, error) {
	return s.project(ctx)
}

// Search filters by term and returns to page 1.
func (s *TableSession) Search(ctx context.Context, term string) (domain.Page, error) {
	if s.mode != domain.ModeBrowse {
		return s.page, domain.ErrBusy
	}
	s.term = term
	s.pageNum = 1
	return s.project(ctx)
}

// ClearSearch drops the filter and returns to page 1.
func (s *TableSession) ClearSearch(ctx context.Context) (domain.Page, error) {
	return s.Search(ctx, "")
}

// GoToPage moves to page n, clamped to [1, LastPage].
func (s *TableSession) GoToPage(ctx context.Context, n int) (domain.Page, error) {
	s.pageNum = max(n, 1)
	return s.project(ctx)
}

// NextPage moves forward one page if possible.
func (s *TableSession) NextPage(ctx context.Context) (domain.Page, error) {
	return s.GoToPage(ctx, s.pageNum+1)
}

// PrevPage moves back one page if possible.
func (s *TableSession) PrevPage(ctx context.Context) (domain.Page, error) {
	return s.GoToPage(ctx, s.pageNum-1)
}

// SetPageSize changes the rows per page and returns to page 1.
func (s *TableSession) SetPageSize(ctx context.Context, size int) (domain.Page, error) {
	if size < 1 {
		return s.page, fmt.Errorf("page size %d: %w", size, domain.ErrInvalidInput)
	}
	s.pageSize = size
	s.pageNum = 1
	return s.project(ctx)
}

// BeginAdd opens the editor with an empty draft.
func (s *TableSession) BeginAdd() error {
	if s.mode != domain.ModeBrowse {
		return domain.ErrBusy
	}
	s.mode = domain.ModeAdd
	s.draft = domain.Hearing{}
	s.editingID = ""
	return nil
}

// BeginEdit opens the editor on a copy of the record at a visible row.
func (s *TableSession) BeginEdit(row int) error {
	if s.mode != domain.ModeBrowse {
		return domain.ErrBusy
	}
	h, ok := s.page.Row(row)
	if !ok {
		return fmt.Errorf("row %d: %w", row, domain.ErrInvalidIndex)
	}
	s.mode = domain.ModeEdit
	s.draft = h
	s.editingID = h.ID
	return nil
}

// UpdateDraft replaces the edit buffer. The draft's ID is not editable.
func (s *TableSession) UpdateDraft(draft domain.Hearing) error {
	if !s.mode.EditorOpen() {
		return domain.ErrNotEditing
	}
	draft.ID = s.editingID
	s.draft = draft
	return nil
}

// Save validates the draft and writes it. A validation failure leaves the
// editor open with the buffer intact.
func (s *TableSession) Save(ctx context.Context) (domain.Hearing, error) {
	if !s.mode.EditorOpen() {
		return domain.Hearing{}, domain.ErrNotEditing
	}
	if s.hearings == nil || s.validator == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	if err := s.validator.Validate(s.draft); err != nil {
		return domain.Hearing{}, err
	}

	var (
		saved domain.Hearing
		err   error
	)
	if s.mode == domain.ModeAdd {
		saved, err = s.hearings.Insert(ctx, s.draft)
	} else {
		saved, err = s.hearings.ReplaceByID(ctx, s.editingID, s.draft)
	}
	if err != nil {
		return domain.Hearing{}, err
	}

	logger.Debug("Saved hearing %s in %s mode", saved.ID, s.mode)
	s.closeEditor()
	s.pageNum = 1
	if _, err := s.project(ctx); err != nil {
		return saved, fmt.Errorf("refresh after save: %w", err)
	}
	return saved, nil
}

// Cancel closes the editor or drops a pending confirmation.
func (s *TableSession) Cancel() {
	s.closeEditor()
	s.pending = nil
}

// RequestDelete asks for confirmation before deleting the record at a visible row.
func (s *TableSession) RequestDelete(row int) (domain.PendingAction, error) {
	if s.mode != domain.ModeBrowse {
		return domain.PendingAction{}, domain.ErrBusy
	}
	h, ok := s.page.Row(row)
	if !ok {
		return domain.PendingAction{}, fmt.Errorf("row %d: %w", row, domain.ErrInvalidIndex)
	}
	s.pending = &domain.PendingAction{Kind: domain.ActionDelete, Record: h}
	s.mode = domain.ModeConfirmDelete
	return *s.pending, nil
}

// ConfirmDelete removes the pending record and returns it.
func (s *TableSession) ConfirmDelete(ctx context.Context) (domain.Hearing, error) {
	if s.pending == nil {
		return domain.Hearing{}, domain.ErrNoPendingAction
	}
	if s.hearings == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	target := s.pending.Record
	s.pending = nil
	s.mode = domain.ModeBrowse

	removed, err := s.hearings.RemoveByID(ctx, target.ID)
	if err != nil {
		return domain.Hearing{}, err
	}

	logger.Debug("Deleted hearing %s", removed.ID)
	s.pageNum = 1
	if _, err := s.project(ctx); err != nil {
		return removed, fmt.Errorf("refresh after delete: %w", err)
	}
	return removed, nil
}

// DeclineDelete drops the pending deletion without touching the store.
func (s *TableSession) DeclineDelete() error {
	if s.pending == nil {
		return domain.ErrNoPendingAction
	}
	s.pending = nil
	s.mode = domain.ModeBrowse
	return nil
}

// Mode returns what the surface is doing.
func (s *TableSession) Mode() domain.SurfaceMode {
	return s.mode
}

// Term returns the active search term.
func (s *TableSession) Term() string {
	return s.term
}

// Page returns the last derived page.
func (s *TableSession) Page() domain.Page {
	return s.page
}

// Draft returns the edit buffer.
func (s *TableSession) Draft() domain.Hearing {
	return s.draft
}

// Pending returns the action awaiting confirmation, if any.
func (s *TableSession) Pending() (domain.PendingAction, bool) {
	if s.pending == nil {
		return domain.PendingAction{}, false
	}
	return *s.pending, true
}

func (s *TableSession) closeEditor() {
	if s.mode.EditorOpen() || s.mode == domain.ModeConfirmDelete {
		s.mode = domain.ModeBrowse
	}
	s.draft = domain.Hearing{}
	s.editingID = ""
}

// project derives the page for the current term and page number,
// pulling the page number back inside the available range.
func (s *TableSession) project(ctx context.Context) (domain.Page, error) {
	if s.views == nil {
		return s.page, domain.ErrNotImplemented
	}

	query := domain.PageQuery{Term: s.term, Page: s.pageNum, Size: s.pageSize}
	page, err := s.views.Project(ctx, query)
	if err != nil {
		return s.page, err
	}
	if last := page.LastPage(); page.Number > last {
		query.Page = last
		if page, err = s.views.Project(ctx, query); err != nil {
			return s.page, err
		}
	}

	s.pageNum = page.Number
	s.page = page
	return page, nil
}
