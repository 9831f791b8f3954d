package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
)

// hearingStore implements driven.HearingStore.
type hearingStore struct {
	store *Store
}

var _ driven.HearingStore = (*hearingStore)(nil)

const hearingColumns = "id, process_number, date, court, correspondent"

// Snapshot returns all records ordered by position.
func (s *hearingStore) Snapshot(ctx context.Context) ([]domain.Hearing, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+hearingColumns+" FROM hearings ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying hearings: %w", err)
	}
	defer rows.Close()

	hearings := make([]domain.Hearing, 0)
	for rows.Next() {
		var h domain.Hearing
		if err := rows.Scan(&h.ID, &h.ProcessNumber, &h.Date, &h.Court, &h.Correspondent); err != nil {
			return nil, fmt.Errorf("scanning hearing: %w", err)
		}
		hearings = append(hearings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hearings: %w", err)
	}
	return hearings, nil
}

// Len returns the number of records.
func (s *hearingStore) Len(ctx context.Context) (int, error) {
	return count(ctx, s.store.db)
}

// Append adds a record after the last position.
func (s *hearingStore) Append(ctx context.Context, hearing domain.Hearing) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		n, err := count(ctx, tx)
		if err != nil {
			return err
		}
		return insertAt(ctx, tx, n, hearing)
	})
}

// ReplaceAt overwrites the record at index.
func (s *hearingStore) ReplaceAt(ctx context.Context, index int, hearing domain.Hearing) error {
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE hearings
		SET id = ?, process_number = ?, date = ?, court = ?, correspondent = ?
		WHERE position = ?
	`, hearing.ID, hearing.ProcessNumber, hearing.Date, hearing.Court, hearing.Correspondent, index)
	if err != nil {
		return fmt.Errorf("updating hearing at %d: %w", index, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating hearing at %d: %w", index, err)
	}
	if affected == 0 {
		return fmt.Errorf("index %d: %w", index, domain.ErrInvalidIndex)
	}
	return nil
}

// RemoveAt deletes the record at index and closes the gap.
func (s *hearingStore) RemoveAt(ctx context.Context, index int) (domain.Hearing, error) {
	var removed domain.Hearing
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"SELECT "+hearingColumns+" FROM hearings WHERE position = ?", index)
		err := row.Scan(&removed.ID, &removed.ProcessNumber, &removed.Date, &removed.Court, &removed.Correspondent)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("index %d: %w", index, domain.ErrInvalidIndex)
		}
		if err != nil {
			return fmt.Errorf("scanning hearing: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM hearings WHERE position = ?", index); err != nil {
			return fmt.Errorf("deleting hearing: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			"UPDATE hearings SET position = position - 1 WHERE position > ?", index); err != nil {
			return fmt.Errorf("shifting positions: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Hearing{}, err
	}
	return removed, nil
}

// IndexOf returns the position of the record with the given ID.
func (s *hearingStore) IndexOf(ctx context.Context, id string) (int, error) {
	var pos int
	err := s.store.db.QueryRowContext(ctx, "SELECT position FROM hearings WHERE id = ?", id).Scan(&pos)
	if errors.Is(err, sql.ErrNoRows) {
		return -1, domain.ErrNotFound
	}
	if err != nil {
		return -1, fmt.Errorf("looking up hearing %q: %w", id, err)
	}
	return pos, nil
}

// Reset replaces the whole table in one transaction.
func (s *hearingStore) Reset(ctx context.Context, records []domain.Hearing) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM hearings"); err != nil {
			return fmt.Errorf("clearing hearings: %w", err)
		}
		for i, h := range records {
			if err := insertAt(ctx, tx, i, h); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *hearingStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func count(ctx context.Context, q queryer) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM hearings").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting hearings: %w", err)
	}
	return n, nil
}

func insertAt(ctx context.Context, tx *sql.Tx, position int, h domain.Hearing) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO hearings (id, position, process_number, date, court, correspondent)
		VALUES (?, ?, ?, ?, ?, ?)
	`, h.ID, position, h.ProcessNumber, h.Date, h.Court, h.Correspondent)
	if err != nil {
		return fmt.Errorf("inserting hearing %q: %w", h.ID, err)
	}
	return nil
}
