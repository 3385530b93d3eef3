package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pet-care-planner/internal/domain/diagnostics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictRepo_CreateValidates(t *testing.T) {
	repo := NewConflictRepo()
	ctx := context.Background()

	assert.Error(t, repo.Create(ctx, diagnostics.Record{}))

	rec := diagnostics.Record{ID: "c1", PetName: "Buddy"}
	require.NoError(t, repo.Create(ctx, rec))
	assert.Error(t, repo.Create(ctx, rec))
}

func TestConflictRepo_ListNewestFirstWithFilterAndLimit(t *testing.T) {
	repo := NewConflictRepo()
	ctx := context.Background()
	t0 := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, diagnostics.Record{ID: "a", PetName: "Buddy", DetectedAt: t0}))
	require.NoError(t, repo.Create(ctx, diagnostics.Record{ID: "b", PetName: "Mittens", DetectedAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, diagnostics.Record{ID: "c", PetName: "Buddy", DetectedAt: t0.Add(2 * time.Minute)}))
	require.NoError(t, repo.Create(ctx, diagnostics.Record{ID: "d", PetName: "Buddy", DetectedAt: t0.Add(2 * time.Minute)}))

	all, err := repo.List(ctx, diagnostics.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, ids(all))

	buddy, err := repo.List(ctx, diagnostics.ListFilter{PetName: "Buddy", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c"}, ids(buddy))
}

func ids(recs []diagnostics.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestConflictRepo_DropsOldestPastCapacity(t *testing.T) {
	repo := newConflictRepo(diagnostics.MaxLimit)
	ctx := context.Background()
	t0 := time.Date(2026, 2, 11, 9, 0, 0, 0, time.UTC)

	total := diagnostics.MaxLimit + 25
	for i := 0; i < total; i++ {
		require.NoError(t, repo.Create(ctx, diagnostics.Record{
			ID:         fmt.Sprintf("c%d", i),
			PetName:    "Buddy",
			DetectedAt: t0.Add(time.Duration(i) * time.Second),
		}))
	}

	assert.Len(t, repo.items, diagnostics.MaxLimit)
	assert.Len(t, repo.byID, diagnostics.MaxLimit)

	got, err := repo.List(ctx, diagnostics.ListFilter{Limit: diagnostics.MaxLimit})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("c%d", total-1), got[0].ID)
	assert.Equal(t, "c25", got[len(got)-1].ID)

	// El id descartado puede volver a entrar.
	assert.NoError(t, repo.Create(ctx, diagnostics.Record{ID: "c0", DetectedAt: t0}))
}
