// Package pipeline moves candidate records between recruiter stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/candidate"
)

// ErrMoveFailed marks a dashboard move whose durable write failed.
// It is distinct from intake errors so the UI can report it separately.
var ErrMoveFailed = errors.New("stage update failed")

// Store is the part of the candidate store the pipeline writes through.
type Store interface {
	List(ctx context.Context, f candidate.Filter) ([]candidate.Record, error)
	UpdateStage(ctx context.Context, id int64, stage candidate.Stage) error
}

// CanTransition reports whether a record may move from one stage to another.
// Every pair of valid stages is allowed, including moving back.
func CanTransition(from, to candidate.Stage) bool {
	return from.Valid() && to.Valid()
}

type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// Transition overwrites the stage of record id. Concurrent transitions of the
// same record resolve last write wins.
func (s *Service) Transition(ctx context.Context, id int64, target candidate.Stage) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", candidate.ErrInvalidStage, target)
	}
	if err := s.store.UpdateStage(ctx, id, target); err != nil {
		return err
	}
	s.log.Info("candidate stage changed", zap.Int64("id", id), zap.String("stage", string(target)))
	return nil
}
