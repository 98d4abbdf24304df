package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"itpf-legal-backend/app"
	"itpf-legal-backend/config"
	"itpf-legal-backend/corpus"
	"itpf-legal-backend/handlers"
	"itpf-legal-backend/logging"
	"itpf-legal-backend/storage"
)

func main() {
	// Load .env from the working directory, then from the project root
	// (relative to cmd/server/)
	envFile := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	if envFile == "" {
		logger.Warn("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer a.Close()

	// Load the corpus up front so the first request does not pay for it
	if _, err := a.Store.Snapshot(ctx); err != nil {
		logger.WithError(err).Error("Initial corpus load failed, retrying on first request")
	}

	if cfg.Corpus.Watch {
		startWatcher(ctx, a, cfg)
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := handlers.NewRouter(handlers.RouterConfig{
		AnswerService:   a.AnswerService,
		Logger:          logger,
		RateLimiter:     handlers.NewIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		CORSAllowOrigin: cfg.Server.CORSAllowOrigin,
		QueryLog:        a.QueryLog != nil,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Server shutdown failed")
		}
	}()

	logger.WithField("port", cfg.Server.Port).Info("Server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("Failed to start server")
	}
	logger.Info("Server stopped")
}

// startWatcher reloads the corpus when local shard files change
func startWatcher(ctx context.Context, a *app.App, cfg *config.Config) {
	local, ok := a.Storage.(*storage.LocalStorage)
	if !ok || cfg.Corpus.Source != config.CorpusFromStorage {
		a.Logger.Warn("CORPUS_WATCH needs local storage as the corpus source, ignoring")
		return
	}

	dir := local.Dir()
	if cfg.Corpus.Prefix != "" {
		dir = filepath.Join(dir, filepath.FromSlash(cfg.Corpus.Prefix))
	}
	w, err := corpus.NewWatcher(dir, a.Store, a.Logger)
	if err != nil {
		a.Logger.WithError(err).Error("Failed to start corpus watcher")
		return
	}
	go w.Run(ctx)
	a.Logger.WithField("dir", dir).Info("Watching corpus shards")
}
