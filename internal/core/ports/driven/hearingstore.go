package driven

import (
	"context"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

// HearingStore holds the ordered sequence of hearing records.
// Positions are 0-based. Every mutation swaps in a new sequence, so
// slices returned by Snapshot never observe later changes.
type HearingStore interface {
	// Snapshot returns a copy of all records in order.
	Snapshot(ctx context.Context) ([]domain.Hearing, error)

	// Len returns the number of records.
	Len(ctx context.Context) (int, error)

	// Append adds a record at the end.
	Append(ctx context.Context, hearing domain.Hearing) error

	// ReplaceAt overwrites the record at index.
	// Returns domain.ErrInvalidIndex if index is out of range.
	ReplaceAt(ctx context.Context, index int, hearing domain.Hearing) error

	// RemoveAt deletes the record at index, shifting later records left,
	// and returns the record that was removed.
	// Returns domain.ErrInvalidIndex if index is out of range.
	RemoveAt(ctx context.Context, index int) (domain.Hearing, error)

	// IndexOf returns the position of the record with the given ID.
	// Returns domain.ErrNotFound if no record has that ID.
	IndexOf(ctx context.Context, id string) (int, error)

	// Reset replaces the whole contents with records.
	Reset(ctx context.Context, records []domain.Hearing) error
}
