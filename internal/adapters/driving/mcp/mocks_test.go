package mcp

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/services"
)

// mockViewService is a mock implementation of driving.ViewService.
type mockViewService struct {
	page domain.Page
	err  error
}

func (m *mockViewService) Project(_ context.Context, _ domain.PageQuery) (domain.Page, error) {
	return m.page, m.err
}

// failingHearingService returns err from every call.
type failingHearingService struct {
	*services.HearingService
	err error
}

func (f *failingHearingService) Snapshot(context.Context) ([]domain.Hearing, error) {
	return nil, f.err
}

func (f *failingHearingService) Insert(context.Context, domain.Hearing) (domain.Hearing, error) {
	return domain.Hearing{}, f.err
}

func testHearings() []domain.Hearing {
	return []domain.Hearing{
		{ID: "h1", ProcessNumber: "123", Date: "2024-01-01", Court: "TJSP", Correspondent: "Alice"},
		{ID: "h2", ProcessNumber: "456", Date: "2024-02-02", Court: "TJRJ", Correspondent: "Bob"},
	}
}

// newTestPorts wires real services over an in-memory store.
func newTestPorts(records ...domain.Hearing) *Ports {
	hearings := services.NewHearingService(memory.NewHearingStore(records...))
	return &Ports{
		Hearings:  hearings,
		Views:     services.NewViewService(hearings),
		Validator: services.NewHearingValidator(),
	}
}
