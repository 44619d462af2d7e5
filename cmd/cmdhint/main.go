package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmdhint/internal/config"
	dbRedis "github.com/kailas-cloud/cmdhint/internal/db/redis"
	logpkg "github.com/kailas-cloud/cmdhint/internal/logger"
	"github.com/kailas-cloud/cmdhint/internal/metrics"
	"github.com/kailas-cloud/cmdhint/internal/repository/datafile"
	documentrepo "github.com/kailas-cloud/cmdhint/internal/repository/document"
	indexrepo "github.com/kailas-cloud/cmdhint/internal/repository/index"
	searchrepo "github.com/kailas-cloud/cmdhint/internal/repository/search"
	chiTransport "github.com/kailas-cloud/cmdhint/internal/transport/chi"
	documentuc "github.com/kailas-cloud/cmdhint/internal/usecase/document"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
	loaderuc "github.com/kailas-cloud/cmdhint/internal/usecase/loader"
	searchuc "github.com/kailas-cloud/cmdhint/internal/usecase/search"
	"github.com/kailas-cloud/cmdhint/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cmdhint API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("key_prefix", cfg.Storage.KeyPrefix),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create search engine client", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		logger.Fatal("Search engine not ready", zap.Error(err))
	}
	logger.Info("Connected to search engine")

	metrics.Register()

	// Repositories
	prefix := cfg.Storage.KeyPrefix
	indexRepo := indexrepo.New(store, prefix)
	docRepo := documentrepo.New(store, prefix).WithBatchSize(cfg.Index.MaxBatchSize)
	searchRepo := searchrepo.New(store, prefix)
	source := datafile.New(cfg.Data.DocumentsFile, cfg.Data.SynonymsFile)

	// Use cases
	loaderSvc := loaderuc.New(source, indexRepo, docRepo)
	searchSvc := searchuc.New(searchRepo).
		WithTypoTolerance(cfg.Search.Typo()).
		WithRelaxation(cfg.Search.Relax())
	docSvc := documentuc.New(docRepo).
		WithPagination(cfg.Index.DefaultPageSize, cfg.Index.MaxPageSize)
	healthSvc := healthuc.New(store)

	if cfg.Data.LoadOnStart {
		loadOnStart(ctx, loaderSvc, logger)
	}

	server := chiTransport.NewServer(searchSvc, loaderSvc, docSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:        cfg.Auth.APIKeys,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout(),
		WriteTimeout: cfg.HTTP.WriteTimeout(),
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadOnStart fills the indexes before serving. Failures are logged and the server still starts.
func loadOnStart(ctx context.Context, svc *loaderuc.Service, logger *zap.Logger) {
	ctx = logpkg.ContextWithLogger(ctx, logger)

	res, err := svc.RefreshData(ctx)
	if err != nil {
		logger.Error("Initial data load failed", zap.Error(err))
		return
	}
	logger.Info("Initial data loaded", zap.Int("commands", res.Commands), zap.Int("guides", res.Guides))

	groups, err := svc.RefreshSynonyms(ctx)
	if err != nil {
		logger.Warn("Initial synonyms load failed", zap.Error(err))
		return
	}
	logger.Info("Initial synonyms applied", zap.Int("groups", groups))
}
