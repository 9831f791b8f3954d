package driving

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// ViewService derives visible pages from the current store contents.
type ViewService interface {
	// Project filters the store by query term and returns the requested page.
	Project(ctx context.Context, query domain.PageQuery) (domain.Page, error)
}

// HearingValidator checks a record before it is saved.
// Implementations must be pure: no side effects beyond the returned error.
type HearingValidator interface {
	// Validate returns a *domain.ValidationError describing the first failed rule, or nil.
	Validate(hearing domain.Hearing) error
}
