package rediscache

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/repository/memory"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	down bool
	sets int
}

func newFakeRedis() *fakeRedis { return &fakeRedis{data: map[string]string{}} }

var errDown = errors.New("connection refused")

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return redis.NewStringResult("", errDown)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return redis.NewStatusResult("", errDown)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.sets++
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return redis.NewIntResult(0, errDown)
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

type countingRepo struct {
	candidate.Repository
	lists int
}

func (c *countingRepo) List(ctx context.Context, role string) ([]candidate.Record, error) {
	c.lists++
	return c.Repository.List(ctx, role)
}

func newRecord(role string, score float64) candidate.Record {
	ev := &candidate.Evaluation{OverallScore: score, Recommendation: candidate.RecommendationForScore(score)}
	return candidate.NewRecord(candidate.Candidate{Name: candidate.Name{First: "A"}}, ev, role, time.Now())
}

func TestCache_HitsAfterFirstRead(t *testing.T) {
	inner := &countingRepo{Repository: memory.NewCandidateRepository()}
	rdb := newFakeRedis()
	repo := New(inner, rdb, time.Minute, nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, newRecord("frontend", 80))
	require.NoError(t, err)

	first, err := repo.List(ctx, "frontend")
	require.NoError(t, err)
	second, err := repo.List(ctx, "frontend")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.lists)
	assert.Equal(t, first, second)
}

func TestCache_WriteIsVisibleToNextRead(t *testing.T) {
	inner := &countingRepo{Repository: memory.NewCandidateRepository()}
	repo := New(inner, newFakeRedis(), time.Minute, nil)
	ctx := context.Background()

	id, err := repo.Create(ctx, newRecord("frontend", 80))
	require.NoError(t, err)
	items, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, candidate.StageNew, items[0].Stage)

	require.NoError(t, repo.UpdateStage(ctx, id, candidate.StageDecision))
	items, err = repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, candidate.StageDecision, items[0].Stage)

	_, err = repo.Create(ctx, newRecord("backend", 30))
	require.NoError(t, err)
	items, err = repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	inner := &countingRepo{Repository: memory.NewCandidateRepository()}
	rdb := newFakeRedis()
	rdb.down = true
	repo := New(inner, rdb, time.Minute, nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, newRecord("frontend", 80))
	require.NoError(t, err)
	items, err := repo.List(ctx, "frontend")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	_, err = repo.List(ctx, "frontend")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
	assert.Zero(t, rdb.sets)
}

func TestCache_FailedWriteDoesNotBump(t *testing.T) {
	rdb := newFakeRedis()
	repo := New(memory.NewCandidateRepository(), rdb, time.Minute, nil)

	err := repo.UpdateStage(context.Background(), 42, candidate.StageReviewing)
	assert.ErrorIs(t, err, candidate.ErrNotFound)
	_, ok := rdb.data[versionKey]
	assert.False(t, ok)
}
