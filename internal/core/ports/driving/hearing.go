package driving

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// HearingService is the mutation service over the record store.
// Implementations serialise all mutations.
type HearingService interface {
	// Snapshot returns a copy of every record in store order.
	Snapshot(ctx context.Context) ([]domain.Hearing, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.Hearing, error)

	// IndexOf returns the current store position of a record.
	IndexOf(ctx context.Context, id string) (int, error)

	// Insert appends a record and returns it with its assigned ID.
	Insert(ctx context.Context, hearing domain.Hearing) (domain.Hearing, error)

	// ReplaceAt overwrites the record at index and returns the new record.
	ReplaceAt(ctx context.Context, index int, hearing domain.Hearing) (domain.Hearing, error)

	// RemoveAt deletes the record at index and returns the removed record.
	RemoveAt(ctx context.Context, index int) (domain.Hearing, error)

	// ReplaceByID overwrites the record with the given ID wherever it currently sits.
	ReplaceByID(ctx context.Context, id string, hearing domain.Hearing) (domain.Hearing, error)

	// RemoveByID deletes the record with the given ID and returns it.
	RemoveByID(ctx context.Context, id string) (domain.Hearing, error)

	// Load replaces the store contents with seed records.
	Load(ctx context.Context, records []domain.Hearing) error
}
