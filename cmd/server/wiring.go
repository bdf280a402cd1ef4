package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/config"
	"github.com/artem13815/hrboard/pkg/evaluation"
	"github.com/artem13815/hrboard/pkg/health"
	"github.com/artem13815/hrboard/pkg/health/checkers"
	"github.com/artem13815/hrboard/pkg/intake"
	"github.com/artem13815/hrboard/pkg/jobdesc"
	"github.com/artem13815/hrboard/pkg/llm"
	"github.com/artem13815/hrboard/pkg/llm/gemini"
	"github.com/artem13815/hrboard/pkg/llm/openrouter"
	"github.com/artem13815/hrboard/pkg/logger"
	"github.com/artem13815/hrboard/pkg/pipeline"
	"github.com/artem13815/hrboard/pkg/repository/memory"
	pgrepo "github.com/artem13815/hrboard/pkg/repository/postgres"
	"github.com/artem13815/hrboard/pkg/repository/rediscache"
	"github.com/artem13815/hrboard/pkg/resume"
	"github.com/artem13815/hrboard/pkg/resume/affinda"
	"github.com/artem13815/hrboard/pkg/storage/postgres"
)

// deps holds everything the subcommands share. Built once per process and
// released with close.
type deps struct {
	cfg config.Config
	log *zap.Logger

	pool *pgxpool.Pool
	rdb  *redis.Client

	catalog   *jobdesc.Catalog
	oracle    llm.ChatModel
	store     candidate.UseCase
	pipeline  *pipeline.Service
	intake    *intake.Service
	readiness health.ReadinessUseCase
}

func loadConfig() (config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if flagJSON {
		cfg.LogJSON = true
	}
	if flagDebug {
		cfg.LogDebug = true
	}
	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return cfg, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

func buildDeps(ctx context.Context, cfg config.Config, log *zap.Logger) (*deps, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	d := &deps{cfg: cfg, log: log}

	catalog, err := jobdesc.Load(cfg.JobDescriptionsPath)
	if err != nil {
		return nil, err
	}
	d.catalog = catalog

	repo, err := d.openRepository(ctx)
	if err != nil {
		d.close()
		return nil, err
	}
	d.store = candidate.NewService(repo, log.Named("store"))
	d.pipeline = pipeline.NewService(d.store, log.Named("pipeline"))

	d.oracle, err = newOracle(ctx, cfg)
	if err != nil {
		d.close()
		return nil, err
	}
	if cfg.OracleModel() == "" {
		log.Warn("no model configured for the oracle provider, evaluations will fail",
			zap.String(logger.FieldProvider, cfg.OracleProvider))
	}
	extractor := newExtractor(cfg, d.oracle, log.Named("extractor"))
	evaluator := evaluation.NewService(d.oracle, log.Named("evaluation"))
	d.intake = intake.NewService(extractor, evaluator, catalog, d.store, log.Named("intake"))

	var checks []health.Checker
	if d.pool != nil {
		checks = append(checks, checkers.NewPostgresChecker(d.pool))
	}
	if d.rdb != nil {
		checks = append(checks, checkers.NewRedisChecker(d.rdb))
	}
	d.readiness = health.NewService(checks...)

	log.Info("dependencies ready",
		zap.String("storage", cfg.Storage),
		zap.Bool("cache", d.rdb != nil),
		zap.String("extractor", cfg.Extractor),
		zap.String(logger.FieldProvider, d.oracle.Provider()),
		zap.String(logger.FieldModel, d.oracle.Model()),
		zap.Int("roles", len(catalog.Roles())),
	)
	return d, nil
}

func (d *deps) openRepository(ctx context.Context) (candidate.Repository, error) {
	var repo candidate.Repository
	switch d.cfg.Storage {
	case "memory":
		d.log.Warn("using in-memory candidate store, records are lost on restart")
		repo = memory.NewCandidateRepository()
	default:
		pool, err := postgres.Connect(ctx, d.cfg.DatabaseURL, postgres.Options{MaxConns: int32(d.cfg.DBMaxConns)})
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		d.pool = pool
		if err := postgres.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		repo = pgrepo.NewCandidateRepository(pool)
	}

	if d.cfg.RedisAddr == "" {
		return repo, nil
	}
	d.rdb = redis.NewClient(&redis.Options{
		Addr:     d.cfg.RedisAddr,
		Password: d.cfg.RedisPassword,
		DB:       d.cfg.RedisDB,
	})
	return rediscache.New(repo, d.rdb, d.cfg.CacheTTL, d.log.Named("cache")), nil
}

func newOracle(ctx context.Context, cfg config.Config) (llm.ChatModel, error) {
	if cfg.OracleProvider == "openrouter" {
		return openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		), nil
	}
	client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return client, nil
}

func newExtractor(cfg config.Config, model llm.ChatModel, log *zap.Logger) resume.Extractor {
	if cfg.Extractor == "local" {
		return resume.NewLLMExtractor(model, log)
	}
	return affinda.New(cfg.AffindaAPIKey, cfg.AffindaWorkspaceID, cfg.AffindaBaseURL)
}

func (d *deps) close() {
	if d.rdb != nil {
		if err := d.rdb.Close(); err != nil {
			d.log.Warn("redis close", zap.Error(err))
		}
	}
	if d.pool != nil {
		d.pool.Close()
	}
	_ = d.log.Sync()
}
