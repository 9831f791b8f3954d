package driven

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// SeedLoader supplies the records the store starts with.
// It is called once at start-up and never again.
type SeedLoader interface {
	// Load returns the seed records in their original order.
	Load(ctx context.Context) ([]domain.Hearing, error)
}
