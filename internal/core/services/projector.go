package services

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
)

// Ensure ViewService implements the interface.
var _ driving.ViewService = (*ViewService)(nil)

// ProjectPage filters records by the query term and cuts out the requested page.
// The working set keeps store order. A page past the last one comes back
// empty rather than clamped; callers that want clamping use Page.LastPage.
func ProjectPage(records []domain.Hearing, query domain.PageQuery) domain.Page {
	q := query.Normalised()

	working := make([]domain.Hearing, 0, len(records))
	positions := make([]int, 0, len(records))
	for i := range records {
		if records[i].Matches(q.Term) {
			working = append(working, records[i])
			positions = append(positions, i)
		}
	}

	total := len(working)
	count := total / q.Size
	if total%q.Size != 0 {
		count++
	}

	start := total
	if q.Page <= count {
		start = (q.Page - 1) * q.Size
	}
	end := start + min(q.Size, total-start)

	items := make([]domain.Hearing, end-start)
	copy(items, working[start:end])
	rows := make([]int, end-start)
	copy(rows, positions[start:end])

	return domain.Page{
		Items:     items,
		Positions: rows,
		Number:    q.Page,
		Size:      q.Size,
		Count:     count,
		Total:     total,
		Query:     q.Term,
	}
}

// ViewService derives pages from the current contents of the store.
type ViewService struct {
	hearings driving.HearingService
}

// NewViewService creates a new view service.
func NewViewService(hearings driving.HearingService) *ViewService {
	return &ViewService{hearings: hearings}
}

// Project returns one page of the filtered records.
func (s *ViewService) Project(ctx context.Context, query domain.PageQuery) (domain.Page, error) {
	if s.hearings == nil {
		return domain.Page{}, domain.ErrNotImplemented
	}
	records, err := s.hearings.Snapshot(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	return ProjectPage(records, query), nil
}
