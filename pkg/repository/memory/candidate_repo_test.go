package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hrboard/pkg/candidate"
)

func record(first, role string, score float64, at time.Time) candidate.Record {
	var ev *candidate.Evaluation
	if score > 0 {
		ev = &candidate.Evaluation{OverallScore: score, Recommendation: candidate.RecommendationForScore(score)}
	}
	return candidate.NewRecord(candidate.Candidate{Name: candidate.Name{First: first}}, ev, role, at)
}

func TestCandidateRepository_OrderingAndFilter(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := repo.Create(ctx, record("a", "frontend", 60, base))
	require.NoError(t, err)
	b, err := repo.Create(ctx, record("b", "backend", 0, base.Add(time.Second)))
	require.NoError(t, err)
	c, err := repo.Create(ctx, record("c", "frontend", 90, base.Add(time.Second)))
	require.NoError(t, err)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{c, b, a}, []int64{all[0].ID, all[1].ID, all[2].ID})

	fe, err := repo.List(ctx, "frontend")
	require.NoError(t, err)
	require.Len(t, fe, 2)
	assert.Equal(t, c, fe[0].ID)

	top, err := repo.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, c, top[0].ID)
	assert.Equal(t, a, top[1].ID)
}

func TestCandidateRepository_UpdateStageUnknown(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	id, err := repo.Create(ctx, record("a", "frontend", 60, time.Now()))
	require.NoError(t, err)

	err = repo.UpdateStage(ctx, id+1, candidate.StageDecision)
	assert.ErrorIs(t, err, candidate.ErrNotFound)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, candidate.StageNew, got.Stage)
}

func TestCandidateRepository_IsolatesCallers(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()
	rec := record("a", "frontend", 60, time.Now())
	rec.Candidate.Emails = []string{"a@example.com"}
	id, err := repo.Create(ctx, rec)
	require.NoError(t, err)

	rec.Candidate.Emails[0] = "changed@example.com"
	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Candidate.PrimaryEmail())
}

func TestCandidateRepository_ConcurrentCreate(t *testing.T) {
	repo := NewCandidateRepository()
	ctx := context.Background()

	const n = 50
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := repo.Create(ctx, record("x", "devops", 50, time.Now()))
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, n)
}
