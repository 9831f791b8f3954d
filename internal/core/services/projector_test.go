package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
)

func numberedHearings(n int) []domain.Hearing {
	records := make([]domain.Hearing, n)
	for i := range records {
		records[i] = domain.Hearing{
			ID:            fmt.Sprintf("id-%02d", i),
			ProcessNumber: fmt.Sprintf("%04d", i),
			Date:          "2024-01-01",
			Court:         "TJSP",
			Correspondent: "Alice",
		}
	}
	return records
}

func TestProjectPage_SearchFiltersCaseInsensitive(t *testing.T) {
	records := []domain.Hearing{
		{ProcessNumber: "123", Date: "2024-01-01", Court: "TJSP", Correspondent: "Alice"},
		{ProcessNumber: "456", Date: "2024-02-02", Court: "TJRJ", Correspondent: "Bob"},
	}

	page := ProjectPage(records, domain.PageQuery{Term: "tjsp"})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "123", page.Items[0].ProcessNumber)
	assert.Equal(t, []int{0}, page.Positions)
	assert.Equal(t, 1, page.Total)

	page = ProjectPage(records, domain.PageQuery{Term: ""})
	assert.Equal(t, records, page.Items)
}

func TestProjectPage_MatchesEveryColumn(t *testing.T) {
	records := seedHearings()

	tests := []struct {
		term string
		want string
	}{
		{"456", "h2"},
		{"2024-03", "h3"},
		{"trf", "h3"},
		{"ALICE", "h1"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			page := ProjectPage(records, domain.PageQuery{Term: tt.term})
			require.Len(t, page.Items, 1)
			assert.Equal(t, tt.want, page.Items[0].ID)
		})
	}
}

func TestProjectPage_PageCount(t *testing.T) {
	records := numberedHearings(12)

	page := ProjectPage(records, domain.PageQuery{Page: 3, Size: 5})
	assert.Equal(t, 3, page.Count)
	assert.Equal(t, 12, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "id-10", page.Items[0].ID)
	assert.Equal(t, "id-11", page.Items[1].ID)
	assert.Equal(t, []int{10, 11}, page.Positions)
	assert.True(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestProjectPage_FirstPageIsFirstFive(t *testing.T) {
	records := numberedHearings(12)

	page := ProjectPage(records, domain.PageQuery{Page: 1, Size: 5})
	assert.Equal(t, records[:5], page.Items)
	assert.True(t, page.HasNext())
}

func TestProjectPage_EmptyWorkingSet(t *testing.T) {
	page := ProjectPage(seedHearings(), domain.PageQuery{Term: "nothing matches"})

	assert.Zero(t, page.Count)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.LastPage())
	assert.NotNil(t, page.Items)
	assert.True(t, page.IsEmpty())
}

func TestProjectPage_BeyondLastPage(t *testing.T) {
	page := ProjectPage(numberedHearings(6), domain.PageQuery{Page: 9, Size: 5})

	assert.Equal(t, 9, page.Number)
	assert.Equal(t, 2, page.Count)
	assert.Empty(t, page.Items)
}

func TestProjectPage_HugePageSize(t *testing.T) {
	page := ProjectPage(numberedHearings(3), domain.PageQuery{Page: 1, Size: math.MaxInt})

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, []int{0, 1, 2}, page.Positions)

	page = ProjectPage(numberedHearings(3), domain.PageQuery{Page: 2, Size: math.MaxInt})
	assert.Equal(t, 1, page.Count)
	assert.Empty(t, page.Items)
}

func TestProjectPage_NormalisesQuery(t *testing.T) {
	page := ProjectPage(numberedHearings(7), domain.PageQuery{Page: -4, Size: 0})

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, domain.DefaultPageSize, page.Size)
	assert.Len(t, page.Items, 5)
}

func TestProjectPage_DoesNotAliasInput(t *testing.T) {
	records := numberedHearings(3)

	page := ProjectPage(records, domain.PageQuery{})
	page.Items[0].Court = "changed"

	assert.Equal(t, "TJSP", records[0].Court)
}

func TestViewService_Project(t *testing.T) {
	hearings, _ := newTestHearingService(numberedHearings(8)...)
	views := NewViewService(hearings)

	page, err := views.Project(context.Background(), domain.PageQuery{Page: 2, Size: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 2, page.Count)
}

func TestViewService_Project_ReflectsMutations(t *testing.T) {
	hearings, _ := newTestHearingService(numberedHearings(12)...)
	views := NewViewService(hearings)
	ctx := context.Background()

	_, err := hearings.RemoveAt(ctx, 0)
	require.NoError(t, err)

	page, err := views.Project(ctx, domain.PageQuery{Page: 1, Size: 5})
	require.NoError(t, err)

	snap, _ := hearings.Snapshot(ctx)
	assert.Equal(t, snap[:5], page.Items)
	assert.Equal(t, "id-01", page.Items[0].ID)
}

func TestViewService_Project_Errors(t *testing.T) {
	_, err := NewViewService(nil).Project(context.Background(), domain.PageQuery{})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	boom := errors.New("boom")
	views := NewViewService(NewHearingService(&failingStore{err: boom}))
	_, err = views.Project(context.Background(), domain.PageQuery{})
	assert.ErrorIs(t, err, boom)
}
