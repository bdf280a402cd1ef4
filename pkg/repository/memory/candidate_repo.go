// Package memory keeps candidate records in process memory. Used for local runs
// without postgres and as the store in tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// CandidateRepository implements candidate.Repository.
type CandidateRepository struct {
	mu     sync.RWMutex
	lastID int64
	rows   map[int64][]byte
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{rows: make(map[int64][]byte)}
}

// Rows are kept serialized so callers never share slices with the stored copy.
func (r *CandidateRepository) Create(_ context.Context, rec candidate.Record) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	rec.ID = r.lastID
	b, err := json.Marshal(rec)
	if err != nil {
		r.lastID--
		return 0, fmt.Errorf("%w: %v", candidate.ErrStoreIO, err)
	}
	r.rows[rec.ID] = b
	return rec.ID, nil
}

func (r *CandidateRepository) List(_ context.Context, role string) ([]candidate.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]candidate.Record, 0, len(r.rows))
	for _, b := range r.rows {
		rec, err := decode(b)
		if err != nil {
			return nil, err
		}
		if role != "" && rec.AppliedRole != role {
			continue
		}
		res = append(res, rec)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

func (r *CandidateRepository) Get(_ context.Context, id int64) (candidate.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.rows[id]
	if !ok {
		return candidate.Record{}, candidate.ErrNotFound
	}
	return decode(b)
}

func (r *CandidateRepository) UpdateStage(_ context.Context, id int64, stage candidate.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return candidate.ErrNotFound
	}
	rec, err := decode(b)
	if err != nil {
		return err
	}
	rec.Stage = stage
	nb, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %v", candidate.ErrStoreIO, err)
	}
	r.rows[id] = nb
	return nil
}

func (r *CandidateRepository) Top(ctx context.Context, limit int) ([]candidate.Record, error) {
	all, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	res := make([]candidate.Record, 0, len(all))
	for _, rec := range all {
		if rec.OverallScore > 0 {
			res = append(res, rec)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].OverallScore > res[j].OverallScore })
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func decode(b []byte) (candidate.Record, error) {
	var rec candidate.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return candidate.Record{}, fmt.Errorf("%w: %v", candidate.ErrStoreIO, err)
	}
	return rec, nil
}
