package candidate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/repository/memory"
)

type failingRepo struct {
	candidate.Repository
	err error
}

func (f failingRepo) Create(context.Context, candidate.Record) (int64, error) { return 0, f.err }
func (f failingRepo) List(context.Context, string) ([]candidate.Record, error) {
	return nil, f.err
}

func jane() candidate.Candidate {
	return candidate.Candidate{
		Name:   candidate.Name{First: "Jane", Family: "Doe"},
		Emails: []string{"jane@example.com"},
		Phones: []string{},
		Skills: []candidate.Skill{{Name: "React"}},
	}
}

func TestService_SaveThenList(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := candidate.NewService(memory.NewCandidateRepository(), zap.New(core))
	ctx := context.Background()

	ev := &candidate.Evaluation{OverallScore: 82, Recommendation: candidate.RecommendationStrong}
	id, err := svc.Save(ctx, jane(), ev, "frontend")
	require.NoError(t, err)

	items, err := svc.List(ctx, candidate.Filter{AppliedRole: "all"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, candidate.StageNew, got.Stage)
	assert.Equal(t, 82.0, got.OverallScore)
	assert.Equal(t, "strong", got.Recommendation)
	assert.Equal(t, "frontend", got.AppliedRole)
	assert.False(t, got.CreatedAt.IsZero())

	require.Equal(t, 1, logs.FilterMessage("candidate saved").Len())
}

func TestService_SaveWithoutEvaluation(t *testing.T) {
	svc := candidate.NewService(memory.NewCandidateRepository(), nil)
	ctx := context.Background()

	id, err := svc.Save(ctx, jane(), nil, "backend")
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Evaluation)
	assert.Zero(t, got.OverallScore)
	assert.Empty(t, got.Recommendation)
}

func TestService_ListEmptyIsNotNil(t *testing.T) {
	svc := candidate.NewService(memory.NewCandidateRepository(), nil)
	items, err := svc.List(context.Background(), candidate.Filter{AppliedRole: "frontend"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_UpdateStage(t *testing.T) {
	svc := candidate.NewService(memory.NewCandidateRepository(), nil)
	ctx := context.Background()
	id, err := svc.Save(ctx, jane(), &candidate.Evaluation{OverallScore: 60, Recommendation: "moderate"}, "frontend")
	require.NoError(t, err)
	before, err := svc.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStage(ctx, id, candidate.StageReviewing))
	after, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, candidate.StageReviewing, after.Stage)
	after.Stage = before.Stage
	assert.Equal(t, before, after)

	err = svc.UpdateStage(ctx, id, candidate.Stage("hired"))
	assert.ErrorIs(t, err, candidate.ErrInvalidStage)

	err = svc.UpdateStage(ctx, id+99, candidate.StageDecision)
	assert.ErrorIs(t, err, candidate.ErrNotFound)
}

func TestService_StoreFailure(t *testing.T) {
	svc := candidate.NewService(failingRepo{err: candidate.ErrStoreIO}, nil)
	_, err := svc.Save(context.Background(), jane(), nil, "frontend")
	assert.ErrorIs(t, err, candidate.ErrStoreIO)

	_, err = svc.Stats(context.Background(), candidate.Filter{})
	assert.True(t, errors.Is(err, candidate.ErrStoreIO))
}

func TestService_TopAndStats(t *testing.T) {
	svc := candidate.NewService(memory.NewCandidateRepository(), nil)
	ctx := context.Background()
	for _, s := range []float64{90, 40, 0, 75} {
		var ev *candidate.Evaluation
		if s > 0 {
			ev = &candidate.Evaluation{OverallScore: s, Recommendation: candidate.RecommendationForScore(s)}
		}
		_, err := svc.Save(ctx, jane(), ev, "frontend")
		require.NoError(t, err)
	}

	top, err := svc.Top(ctx, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 90.0, top[0].OverallScore)
	assert.Equal(t, 75.0, top[1].OverallScore)

	st, err := svc.Stats(ctx, candidate.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 51, st.AvgScore)
	assert.Equal(t, 2, st.HighScorers)
	assert.Equal(t, 4, st.ByStage[candidate.StageNew])
	assert.Equal(t, 0, st.ByStage[candidate.StageDecision])
}

func TestNewRecord_TruncatesCreatedAt(t *testing.T) {
	at := time.Date(2025, 5, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
	r := candidate.NewRecord(jane(), nil, "frontend", at)
	assert.Equal(t, time.UTC, r.CreatedAt.Location())
	assert.Equal(t, 123456000, r.CreatedAt.Nanosecond())
	assert.Equal(t, candidate.StageNew, r.Stage)
}
