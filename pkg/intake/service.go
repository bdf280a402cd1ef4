// Package intake turns an uploaded resume into a stored, evaluated candidate record.
package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/evaluation"
	"github.com/artem13815/hrboard/pkg/resume"
)

// Upload: загруженный файл резюме.
type Upload struct {
	Filename string
	Data     []byte
}

// Result is what the client gets back after a successful intake.
type Result struct {
	ID          int64                `json:"candidateId"`
	Candidate   candidate.Candidate  `json:"data"`
	Evaluation  candidate.Evaluation `json:"evaluation"`
	AppliedRole string               `json:"evaluatedFor"`
}

// JobDescriptions resolves a role key to its description, "" when unknown.
type JobDescriptions interface {
	Lookup(key string) string
}

// Saver is the write side of the candidate store.
type Saver interface {
	Save(ctx context.Context, c candidate.Candidate, ev *candidate.Evaluation, appliedRole string) (int64, error)
}

type Service struct {
	extractor resume.Extractor
	evaluator evaluation.UseCase
	jobs      JobDescriptions
	store     Saver
	log       *zap.Logger
}

func NewService(ex resume.Extractor, ev evaluation.UseCase, jobs JobDescriptions, store Saver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{extractor: ex, evaluator: ev, jobs: jobs, store: store, log: log}
}

// Intake runs extract, normalize, evaluate and save in order. The first failing
// step aborts the intake with that step's error and nothing is stored.
func (s *Service) Intake(ctx context.Context, up Upload, roleKey string) (Result, error) {
	roleKey = strings.TrimSpace(roleKey)
	log := s.log.With(
		zap.String("intake_id", uuid.NewString()),
		zap.String("filename", up.Filename),
		zap.String("role", roleKey),
	)
	start := time.Now()

	raw, err := s.extractor.Extract(ctx, up.Filename, up.Data)
	if err != nil {
		log.Warn("intake: extraction failed", zap.Error(err))
		return Result{}, err
	}

	c, err := resume.Normalize(raw)
	if err != nil {
		log.Warn("intake: normalization failed", zap.Error(err))
		return Result{}, err
	}

	var jd string
	if roleKey != "" && s.jobs != nil {
		jd = s.jobs.Lookup(roleKey)
	}
	ev, err := s.evaluator.Evaluate(ctx, c, jd)
	if err != nil {
		log.Warn("intake: evaluation failed", zap.Error(err))
		return Result{}, err
	}

	// The upload is fully processed at this point; a client disconnect must not lose it.
	id, err := s.store.Save(context.WithoutCancel(ctx), c, &ev, roleKey)
	if err != nil {
		log.Error("intake: save failed", zap.Error(err))
		return Result{}, err
	}

	log.Info("intake completed",
		zap.Int64("id", id),
		zap.Float64("score", ev.OverallScore),
		zap.Duration("latency", time.Since(start)),
	)
	return Result{ID: id, Candidate: c, Evaluation: ev, AppliedRole: roleKey}, nil
}

// BatchItem is one file of a batch intake.
type BatchItem struct {
	Upload
	Role string
}

// BatchResult pairs a batch item with its outcome.
type BatchResult struct {
	Filename string
	Result   Result
	Err      error
}

// String renders a one-line report used by the CLI.
func (r BatchResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: failed: %v", r.Filename, r.Err)
	}
	return fmt.Sprintf("%s: id=%d score=%v %s", r.Filename, r.Result.ID, r.Result.Evaluation.OverallScore, r.Result.Evaluation.Recommendation)
}
