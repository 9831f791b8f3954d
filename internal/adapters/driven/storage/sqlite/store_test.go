package sqlite

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driven"
)

// setupTestStore opens a fresh in-memory store and closes it when the test ends.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func seededHearingStore(t *testing.T) driven.HearingStore {
	t.Helper()
	hs := setupTestStore(t).HearingStore()
	require.NoError(t, hs.Reset(context.Background(), []domain.Hearing{
		{ID: "a", ProcessNumber: "123", Date: "2024-01-01", Court: "TJSP", Correspondent: "Alice"},
		{ID: "b", ProcessNumber: "456", Date: "2024-02-02", Court: "TJRJ", Correspondent: "Bob"},
		{ID: "c", ProcessNumber: "789", Date: "2024-03-03", Court: "TRF3", Correspondent: "Carol"},
	}))
	return hs
}

func ids(t *testing.T, hs driven.HearingStore) []string {
	t.Helper()
	snap, err := hs.Snapshot(context.Background())
	require.NoError(t, err)
	out := make([]string, len(snap))
	for i, h := range snap {
		out[i] = h.ID
	}
	return out
}

func TestNewStore_MigratesSchema(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	n, err := store.HearingStore().Len(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNewStore_IsolatedDatabases(t *testing.T) {
	ctx := context.Background()
	first := setupTestStore(t).HearingStore()
	second := setupTestStore(t).HearingStore()

	require.NoError(t, first.Append(ctx, domain.Hearing{ID: "x"}))

	n, err := second.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_Migrate_SkipsApplied(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"001_hearings.up.sql": {Data: []byte("SELECT broken syntax here")},
		"002_extra.up.sql":    {Data: []byte("CREATE TABLE extra (id TEXT)")},
		"README.md":           {Data: []byte("ignored")},
		"x_bad.up.sql":        {Data: []byte("ignored too")},
	}
	require.NoError(t, store.migrate(ctx, fsys))

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestStore_Migrate_FailureRollsBack(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	fsys := fstest.MapFS{
		"005_bad.up.sql": {Data: []byte("CREATE TABLE ok (id TEXT); NOT SQL")},
	}
	err := store.migrate(ctx, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "005_bad.up.sql")

	var version int
	require.NoError(t, store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestHearingStore_Snapshot_Order(t *testing.T) {
	hs := seededHearingStore(t)

	snap, err := hs.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap, 3)
	assert.Equal(t, domain.Hearing{ID: "b", ProcessNumber: "456", Date: "2024-02-02", Court: "TJRJ", Correspondent: "Bob"}, snap[1])
}

func TestHearingStore_Snapshot_EmptyIsNotNil(t *testing.T) {
	hs := setupTestStore(t).HearingStore()

	snap, err := hs.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestHearingStore_Append(t *testing.T) {
	hs := seededHearingStore(t)
	ctx := context.Background()

	require.NoError(t, hs.Append(ctx, domain.Hearing{ID: "d", ProcessNumber: "000"}))

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(t, hs))
	idx, err := hs.IndexOf(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestHearingStore_Append_DuplicateID(t *testing.T) {
	hs := seededHearingStore(t)

	err := hs.Append(context.Background(), domain.Hearing{ID: "a"})
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(t, hs))
}

func TestHearingStore_ReplaceAt(t *testing.T) {
	hs := seededHearingStore(t)
	ctx := context.Background()
	repl := domain.Hearing{ID: "b", ProcessNumber: "999", Date: "2025-01-01", Court: "STJ", Correspondent: "Bea"}

	require.NoError(t, hs.ReplaceAt(ctx, 1, repl))

	snap, err := hs.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, repl, snap[1])
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, "c", snap[2].ID)
}

func TestHearingStore_ReplaceAt_OutOfRange(t *testing.T) {
	hs := seededHearingStore(t)

	err := hs.ReplaceAt(context.Background(), 3, domain.Hearing{ID: "z"})
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestHearingStore_RemoveAt_ShiftsPositions(t *testing.T) {
	hs := seededHearingStore(t)
	ctx := context.Background()

	removed, err := hs.RemoveAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "a", removed.ID)
	assert.Equal(t, "Alice", removed.Correspondent)

	assert.Equal(t, []string{"b", "c"}, ids(t, hs))
	idx, err := hs.IndexOf(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	require.NoError(t, hs.Append(ctx, domain.Hearing{ID: "d"}))
	assert.Equal(t, []string{"b", "c", "d"}, ids(t, hs))
}

func TestHearingStore_RemoveAt_OutOfRange(t *testing.T) {
	hs := seededHearingStore(t)

	_, err := hs.RemoveAt(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Equal(t, []string{"a", "b", "c"}, ids(t, hs))
}

func TestHearingStore_IndexOf_NotFound(t *testing.T) {
	hs := seededHearingStore(t)

	_, err := hs.IndexOf(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHearingStore_Reset_ReplacesContents(t *testing.T) {
	hs := seededHearingStore(t)
	ctx := context.Background()

	require.NoError(t, hs.Reset(ctx, []domain.Hearing{{ID: "x"}, {ID: "y"}}))
	assert.Equal(t, []string{"x", "y"}, ids(t, hs))

	n, err := hs.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHearingStore_Reset_DuplicateRollsBack(t *testing.T) {
	hs := seededHearingStore(t)

	err := hs.Reset(context.Background(), []domain.Hearing{{ID: "x"}, {ID: "x"}})
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(t, hs))
}
