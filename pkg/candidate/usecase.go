package candidate

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// UseCase: операции хранилища карточек для приёма резюме и дашборда.
type UseCase interface {
	Save(ctx context.Context, c Candidate, ev *Evaluation, appliedRole string) (int64, error)
	List(ctx context.Context, f Filter) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, error)
	UpdateStage(ctx context.Context, id int64, stage Stage) error
	Top(ctx context.Context, limit int) ([]Record, error)
	Stats(ctx context.Context, f Filter) (Stats, error)
}

const defaultTopLimit = 10

type service struct {
	repo Repository
	now  func() time.Time
	log  *zap.Logger
}

// NewService wraps a repository with the store's write-time rules.
func NewService(repo Repository, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, now: time.Now, log: log}
}

// NewRecord builds the row that Save persists: stage new, createdAt now at the
// precision postgres keeps, score and recommendation copied from ev (0 and "" without one).
func NewRecord(c Candidate, ev *Evaluation, appliedRole string, now time.Time) Record {
	r := Record{
		Candidate:   c,
		AppliedRole: appliedRole,
		Stage:       InitialStage(),
		CreatedAt:   now.UTC().Truncate(time.Microsecond),
	}
	if ev != nil {
		cp := *ev
		r.Evaluation = &cp
		r.OverallScore = ev.OverallScore
		r.Recommendation = string(ev.Recommendation)
	}
	return r
}

func (s *service) Save(ctx context.Context, c Candidate, ev *Evaluation, appliedRole string) (int64, error) {
	rec := NewRecord(c, ev, appliedRole, s.now())
	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("save candidate: %w", err)
	}
	s.log.Info("candidate saved",
		zap.Int64("id", id),
		zap.String("role", appliedRole),
		zap.Float64("score", rec.OverallScore),
	)
	return id, nil
}

func (s *service) List(ctx context.Context, f Filter) ([]Record, error) {
	items, err := s.repo.List(ctx, f.Role())
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int64) (Record, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return Record{}, fmt.Errorf("get candidate %d: %w", id, err)
	}
	return r, nil
}

func (s *service) UpdateStage(ctx context.Context, id int64, stage Stage) error {
	if !stage.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, stage)
	}
	if err := s.repo.UpdateStage(ctx, id, stage); err != nil {
		return fmt.Errorf("update stage of candidate %d: %w", id, err)
	}
	return nil
}

func (s *service) Top(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	items, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top candidates: %w", err)
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

func (s *service) Stats(ctx context.Context, f Filter) (Stats, error) {
	items, err := s.List(ctx, f)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(items), nil
}

// Summarize computes dashboard stats over records.
func Summarize(items []Record) Stats {
	st := Stats{ByStage: make(map[Stage]int, len(Stages()))}
	for _, stage := range Stages() {
		st.ByStage[stage] = 0
	}
	var sum float64
	for _, r := range items {
		st.Total++
		sum += r.OverallScore
		if r.OverallScore >= StrongThreshold {
			st.HighScorers++
		}
		st.ByStage[r.Stage]++
	}
	if st.Total > 0 {
		st.AvgScore = int(math.Round(sum / float64(st.Total)))
	}
	return st
}
