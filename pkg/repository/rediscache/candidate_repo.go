// Package rediscache wraps a candidate.Repository with a redis read cache for
// the dashboard list and top queries.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

const (
	keyPrefix  = "hrboard:candidates:"
	versionKey = keyPrefix + "version"
)

// CandidateRepository caches reads under a version number that every write bumps,
// so a write is visible to the next read without deleting keys.
// Redis errors never fail a call: reads fall through to the wrapped repository.
type CandidateRepository struct {
	next candidate.Repository
	rdb  Client
	ttl  time.Duration
	log  *zap.Logger
}

func New(next candidate.Repository, rdb Client, ttl time.Duration, log *zap.Logger) *CandidateRepository {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CandidateRepository{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (r *CandidateRepository) Create(ctx context.Context, rec candidate.Record) (int64, error) {
	id, err := r.next.Create(ctx, rec)
	if err != nil {
		return 0, err
	}
	r.bump(ctx)
	return id, nil
}

func (r *CandidateRepository) UpdateStage(ctx context.Context, id int64, stage candidate.Stage) error {
	if err := r.next.UpdateStage(ctx, id, stage); err != nil {
		return err
	}
	r.bump(ctx)
	return nil
}

func (r *CandidateRepository) Get(ctx context.Context, id int64) (candidate.Record, error) {
	return r.next.Get(ctx, id)
}

func (r *CandidateRepository) List(ctx context.Context, role string) ([]candidate.Record, error) {
	return r.cached(ctx, "list:"+role, func() ([]candidate.Record, error) {
		return r.next.List(ctx, role)
	})
}

func (r *CandidateRepository) Top(ctx context.Context, limit int) ([]candidate.Record, error) {
	return r.cached(ctx, "top:"+strconv.Itoa(limit), func() ([]candidate.Record, error) {
		return r.next.Top(ctx, limit)
	})
}

func (r *CandidateRepository) cached(ctx context.Context, suffix string, load func() ([]candidate.Record, error)) ([]candidate.Record, error) {
	version, ok := r.version(ctx)
	if !ok {
		return load()
	}
	key := fmt.Sprintf("%sv%d:%s", keyPrefix, version, suffix)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []candidate.Record
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		r.log.Warn("cache entry unreadable", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return load()
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(items)
	if err != nil {
		return items, nil
	}
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return items, nil
}

func (r *CandidateRepository) version(ctx context.Context) (int64, bool) {
	v, err := r.rdb.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		r.log.Warn("cache version unavailable", zap.Error(err))
		return 0, false
	}
	return v, true
}

func (r *CandidateRepository) bump(ctx context.Context) {
	// The write already happened; a cancelled caller must not skip the bump.
	if err := r.rdb.Incr(context.WithoutCancel(ctx), versionKey).Err(); err != nil {
		r.log.Error("cache version bump failed", zap.Error(err))
	}
}
