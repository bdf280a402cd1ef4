package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/llm"
	"github.com/artem13815/hrboard/pkg/logger"
)

// UseCase оценивает кандидата под описание вакансии одним запросом к LLM.
type UseCase interface {
	Evaluate(ctx context.Context, c candidate.Candidate, jobDescription string) (candidate.Evaluation, error)
}

type service struct {
	model llm.ChatModel
	log   *zap.Logger
}

// NewService returns the requester. A nil model is accepted; Evaluate then fails with ErrConfiguration.
func NewService(model llm.ChatModel, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{model: model, log: log}
}

func (s *service) Evaluate(ctx context.Context, c candidate.Candidate, jobDescription string) (candidate.Evaluation, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return candidate.Evaluation{}, fmt.Errorf("%w: job description is required", ErrConfiguration)
	}
	if s.model == nil || strings.TrimSpace(s.model.Model()) == "" {
		return candidate.Evaluation{}, fmt.Errorf("%w: oracle model is not set", ErrConfiguration)
	}

	prompt, err := BuildPrompt(c, jobDescription)
	if err != nil {
		return candidate.Evaluation{}, err
	}

	log := logger.WithCommonFields(s.log, s.model.Provider(), s.model.Model())
	start := time.Now()
	payload, err := s.model.AskJSON(ctx, systemPrompt, prompt)
	if err != nil {
		log.Warn("oracle call failed", zap.Duration("latency", time.Since(start)), zap.Error(err))
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			return candidate.Evaluation{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
		case errors.Is(err, llm.ErrEmptyResponse):
			return candidate.Evaluation{}, fmt.Errorf("%w: %w", ErrOracleEmptyResponse, err)
		default:
			return candidate.Evaluation{}, fmt.Errorf("%w: %w", ErrOracleUnavailable, err)
		}
	}

	ev, err := Parse(payload)
	if err != nil {
		log.Warn("oracle reply rejected", zap.String("reply", logger.TruncateForLog(payload, 300)), zap.Error(err))
		return candidate.Evaluation{}, err
	}
	log.Info("candidate evaluated",
		zap.String("candidate", c.Name.Full()),
		zap.Float64("score", ev.OverallScore),
		zap.String("recommendation", string(ev.Recommendation)),
		zap.Duration("latency", time.Since(start)),
	)
	return ev, nil
}
