package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
	"github.com/custodia-labs/hearings-cli/internal/logger"
)

// Ensure HearingService implements the interface.
var _ driving.HearingService = (*HearingService)(nil)

// HearingService applies insert, replace and remove to the record store.
// A single mutex serialises every mutation so the bounds check and the
// write it guards see the same sequence.
type HearingService struct {
	mu    sync.Mutex
	store driven.HearingStore
	newID func() string
}

// NewHearingService creates a new hearing service.
func NewHearingService(store driven.HearingStore) *HearingService {
	return &HearingService{
		store: store,
		newID: uuid.NewString,
	}
}

// Snapshot returns a copy of every record in store order.
func (s *HearingService) Snapshot(ctx context.Context) ([]domain.Hearing, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Snapshot(ctx)
}

// Get retrieves a record by ID.
func (s *HearingService) Get(ctx context.Context, id string) (*domain.Hearing, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	records, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			h := records[i]
			return &h, nil
		}
	}
	return nil, fmt.Errorf("hearing %q: %w", id, domain.ErrNotFound)
}

// IndexOf returns the current store position of a record.
func (s *HearingService) IndexOf(ctx context.Context, id string) (int, error) {
	if s.store == nil {
		return -1, domain.ErrNotImplemented
	}
	return s.store.IndexOf(ctx, id)
}

// Insert appends a record. Records without an ID get a fresh one.
func (s *HearingService) Insert(ctx context.Context, hearing domain.Hearing) (domain.Hearing, error) {
	if s.store == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if hearing.ID == "" {
		hearing.ID = s.newID()
	} else if err := s.ensureUnused(ctx, hearing.ID, -1); err != nil {
		return domain.Hearing{}, err
	}

	if err := s.store.Append(ctx, hearing); err != nil {
		return domain.Hearing{}, fmt.Errorf("append hearing: %w", err)
	}

	logger.Debug("Inserted hearing %s (%s)", hearing.ID, hearing.ProcessNumber)
	return hearing, nil
}

// ReplaceAt overwrites the record at index. An empty ID keeps the
// identity of the record being replaced.
func (s *HearingService) ReplaceAt(ctx context.Context, index int, hearing domain.Hearing) (domain.Hearing, error) {
	if s.store == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceAt(ctx, index, hearing)
}

// RemoveAt deletes the record at index and returns it.
func (s *HearingService) RemoveAt(ctx context.Context, index int) (domain.Hearing, error) {
	if s.store == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeAt(ctx, index)
}

// ReplaceByID overwrites the record with the given ID wherever it sits now.
func (s *HearingService) ReplaceByID(ctx context.Context, id string, hearing domain.Hearing) (domain.Hearing, error) {
	if s.store == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.store.IndexOf(ctx, id)
	if err != nil {
		return domain.Hearing{}, fmt.Errorf("hearing %q: %w", id, err)
	}
	hearing.ID = id
	return s.replaceAt(ctx, index, hearing)
}

// RemoveByID deletes the record with the given ID and returns it.
func (s *HearingService) RemoveByID(ctx context.Context, id string) (domain.Hearing, error) {
	if s.store == nil {
		return domain.Hearing{}, domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.store.IndexOf(ctx, id)
	if err != nil {
		return domain.Hearing{}, fmt.Errorf("hearing %q: %w", id, err)
	}
	return s.removeAt(ctx, index)
}

// Load replaces the store contents. Missing IDs are generated; duplicate
// IDs are rejected before anything is written.
func (s *HearingService) Load(ctx context.Context, records []domain.Hearing) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(records))
	loaded := make([]domain.Hearing, len(records))
	for i, h := range records {
		if h.ID == "" {
			h.ID = s.newID()
		}
		if _, dup := seen[h.ID]; dup {
			return fmt.Errorf("record %d id %q: %w", i, h.ID, domain.ErrAlreadyExists)
		}
		seen[h.ID] = struct{}{}
		loaded[i] = h
	}

	if err := s.store.Reset(ctx, loaded); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}

	logger.Info("Loaded %d hearings", len(loaded))
	return nil
}

// replaceAt expects s.mu to be held.
func (s *HearingService) replaceAt(ctx context.Context, index int, hearing domain.Hearing) (domain.Hearing, error) {
	records, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.Hearing{}, err
	}
	if index < 0 || index >= len(records) {
		return domain.Hearing{}, fmt.Errorf("replace at %d (size %d): %w", index, len(records), domain.ErrInvalidIndex)
	}

	current := records[index]
	switch {
	case hearing.ID == "":
		hearing.ID = current.ID
	case hearing.ID != current.ID:
		if err := s.ensureUnused(ctx, hearing.ID, index); err != nil {
			return domain.Hearing{}, err
		}
	}

	if err := s.store.ReplaceAt(ctx, index, hearing); err != nil {
		return domain.Hearing{}, fmt.Errorf("replace hearing: %w", err)
	}

	logger.Debug("Replaced hearing at %d with %s", index, hearing.ID)
	return hearing, nil
}

// removeAt expects s.mu to be held.
func (s *HearingService) removeAt(ctx context.Context, index int) (domain.Hearing, error) {
	n, err := s.store.Len(ctx)
	if err != nil {
		return domain.Hearing{}, err
	}
	if index < 0 || index >= n {
		return domain.Hearing{}, fmt.Errorf("remove at %d (size %d): %w", index, n, domain.ErrInvalidIndex)
	}

	removed, err := s.store.RemoveAt(ctx, index)
	if err != nil {
		return domain.Hearing{}, fmt.Errorf("remove hearing: %w", err)
	}

	logger.Debug("Removed hearing %s from %d", removed.ID, index)
	return removed, nil
}

// ensureUnused fails if id already belongs to a record other than the one at skip.
func (s *HearingService) ensureUnused(ctx context.Context, id string, skip int) error {
	pos, err := s.store.IndexOf(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case pos == skip:
		return nil
	default:
		return fmt.Errorf("hearing %q: %w", id, domain.ErrAlreadyExists)
	}
}
