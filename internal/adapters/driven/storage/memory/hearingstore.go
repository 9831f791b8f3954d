package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
)

// Ensure HearingStore implements the interface.
var _ driven.HearingStore = (*HearingStore)(nil)

// HearingStore keeps records in a slice. Every write builds a new slice,
// so a snapshot handed out earlier is never modified.
type HearingStore struct {
	mu       sync.RWMutex
	hearings []domain.Hearing
}

// NewHearingStore creates a store holding a copy of records.
func NewHearingStore(records ...domain.Hearing) *HearingStore {
	return &HearingStore{hearings: slices.Clone(records)}
}

// Snapshot returns a copy of all records in order.
func (s *HearingStore) Snapshot(_ context.Context) ([]domain.Hearing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Hearing, len(s.hearings))
	copy(result, s.hearings)
	return result, nil
}

// Len returns the number of records.
func (s *HearingStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hearings), nil
}

// Append adds a record at the end.
func (s *HearingStore) Append(_ context.Context, hearing domain.Hearing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Hearing, len(s.hearings), len(s.hearings)+1)
	copy(next, s.hearings)
	s.hearings = append(next, hearing)
	return nil
}

// ReplaceAt overwrites the record at index.
func (s *HearingStore) ReplaceAt(_ context.Context, index int, hearing domain.Hearing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.hearings) {
		return fmt.Errorf("index %d (size %d): %w", index, len(s.hearings), domain.ErrInvalidIndex)
	}
	next := slices.Clone(s.hearings)
	next[index] = hearing
	s.hearings = next
	return nil
}

// RemoveAt deletes the record at index and returns it.
func (s *HearingStore) RemoveAt(_ context.Context, index int) (domain.Hearing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.hearings) {
		return domain.Hearing{}, fmt.Errorf("index %d (size %d): %w", index, len(s.hearings), domain.ErrInvalidIndex)
	}
	removed := s.hearings[index]
	next := make([]domain.Hearing, 0, len(s.hearings)-1)
	next = append(next, s.hearings[:index]...)
	s.hearings = append(next, s.hearings[index+1:]...)
	return removed, nil
}

// IndexOf returns the position of the record with the given ID.
func (s *HearingStore) IndexOf(_ context.Context, id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.hearings {
		if s.hearings[i].ID == id {
			return i, nil
		}
	}
	return -1, domain.ErrNotFound
}

// Reset replaces the whole contents with a copy of records.
func (s *HearingStore) Reset(_ context.Context, records []domain.Hearing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hearings = slices.Clone(records)
	return nil
}
