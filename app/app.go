// Package app wires configuration into the services shared by the server and
// the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"itpf-legal-backend/cache"
	"itpf-legal-backend/config"
	"itpf-legal-backend/corpus"
	"itpf-legal-backend/generator"
	"itpf-legal-backend/metrics"
	"itpf-legal-backend/repository"
	"itpf-legal-backend/service"
	"itpf-legal-backend/storage"
)

// App holds the constructed components and the resources to release
type App struct {
	Config        *config.Config
	Logger        *logrus.Logger
	DB            *pgxpool.Pool
	Storage       storage.Storage
	Store         *corpus.Store
	Generator     generator.Generator
	Cache         *cache.RedisCache
	QueryLog      *repository.QueryLogRepository
	AnswerService *service.AnswerService

	closers []func()
}

// New builds every component the configuration enables. Optional
// collaborators (database, cache, generator) that fail to start are logged
// and left out, except when the corpus itself depends on them.
func New(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	if cfg.Database.URL != "" {
		db, err := initPostgres(ctx, cfg.Database.URL)
		if err != nil {
			if cfg.Corpus.Source == config.CorpusFromPostgres {
				return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
			}
			logger.WithError(err).Warn("Postgres unavailable, query log disabled")
		} else {
			a.DB = db
			a.closers = append(a.closers, db.Close)
			logger.Info("Postgres connection established")
		}
	}

	fileStorage, err := storage.NewStorage(ctx, cfg.Storage)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.Storage = fileStorage

	var src corpus.Source = corpus.NewShardSource(fileStorage, cfg.Corpus.Prefix, logger)
	if cfg.Corpus.Source == config.CorpusFromPostgres {
		src = repository.NewLegalEntryRepository(a.DB)
	}
	a.Store = corpus.NewStore(src,
		corpus.StoreWithLogger(logger),
		corpus.StoreWithObserver(func(s *corpus.Snapshot) { metrics.ObserveCorpus(s.Corpus) }),
	)

	opts := []service.AnswerServiceOption{
		service.AnswerWithCorpus(a.Store),
		service.AnswerWithLogger(logger),
		service.AnswerWithMaxTokens(cfg.Generator.MaxTokens),
		service.AnswerWithPromptBudget(cfg.Generator.PromptBudget),
	}

	if a.DB != nil && cfg.Database.QueryLogEnabled {
		a.QueryLog = repository.NewQueryLogRepository(a.DB)
		opts = append(opts, service.AnswerWithQueryLog(a.QueryLog))
	}

	if cfg.Cache.RedisAddr != "" {
		c, err := cache.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.Cache.TTL)
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, answer cache disabled")
		} else {
			a.Cache = c
			a.closers = append(a.closers, func() { c.Close() })
			opts = append(opts, service.AnswerWithCache(c))
		}
	}

	gen, err := initGenerator(ctx, cfg, logger)
	switch {
	case err == nil:
		a.Generator = gen
		if closer, ok := gen.(io.Closer); ok {
			a.closers = append(a.closers, func() { closer.Close() })
		}
		opts = append(opts,
			service.AnswerWithGenerator(gen),
			service.AnswerWithTokenCounter(generator.NewTokenCounter(logger)),
		)
		logger.WithField("provider", gen.Name()).Info("generator initialized")
	case errors.Is(err, errGeneratorDisabled):
	default:
		logger.WithError(err).Warn("generator unavailable, answering from local templates")
	}

	a.AnswerService = service.NewAnswerService(opts...)
	return a, nil
}

// Close releases database, cache and generator connections
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var errGeneratorDisabled = errors.New("generator disabled")

func initGenerator(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (generator.Generator, error) {
	g := cfg.Generator
	switch g.Provider {
	case config.ProviderDeepSeek:
		return generator.NewDeepSeek(generator.DeepSeekConfig{
			APIKeys:     g.DeepSeekKeys,
			BaseURL:     g.DeepSeekBaseURL,
			Model:       g.DeepSeekModel,
			Timeout:     g.Timeout,
			Temperature: g.Temperature,
			Logger:      logger,
		})
	case config.ProviderGemini:
		if g.GeminiAPIKey == "" {
			return nil, generator.ErrNoCredentials
		}
		client, err := generator.NewGeminiClient(ctx, g.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return generator.NewGemini(client, g.GeminiModel), nil
	}
	return nil, errGeneratorDisabled
}
