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

	"github.com/kailas-cloud/shelf/internal/config"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	logpkg "github.com/kailas-cloud/shelf/internal/logger"
	"github.com/kailas-cloud/shelf/internal/metrics"
	repocat "github.com/kailas-cloud/shelf/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/shelf/internal/transport/chi"
	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
	"github.com/kailas-cloud/shelf/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting shelf API server",
		zap.String("build", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	ctx := context.Background()
	backend, err := openCatalog(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to open catalog store", zap.Error(err))
	}
	defer backend.close()
	logger.Info("Catalog store ready", zap.String("driver", cfg.Database.Driver))

	// Decorator chain: driver -> instrumented -> breaker
	var store searchuc.Store = repocat.NewInstrumentedStore(backend.store, cfg.Database.Driver)
	var breaker healthuc.BreakerChecker
	if cfg.Breaker.Enabled {
		b := repocat.NewBreakerStore(store, repocat.BreakerConfig{
			Name:             "catalog-" + cfg.Database.Driver,
			MinRequests:      cfg.Breaker.MinRequests,
			FailureRatio:     cfg.Breaker.FailureRatio,
			OpenTimeout:      time.Duration(cfg.Breaker.OpenTimeoutSec) * time.Second,
			HalfOpenMaxCalls: cfg.Breaker.HalfOpenMaxCalls,
		}, logger)
		store = b
		breaker = b
	}

	searchSvc := searchuc.NewInstrumentedSearcher(
		searchuc.New(store, weightsFromConfig(cfg.Search.Ranking)),
		logger,
	)
	healthSvc := healthuc.New(backend.pinger, breaker)

	server := chiTransport.NewServer(searchSvc, healthSvc, request.Limits{
		Default: cfg.Search.DefaultLimit,
		Max:     cfg.Search.MaxLimit,
	}, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		APIKeys:   cfg.Auth.APIKeys,
		RateRPS:   cfg.RateLimit.RPS,
		RateBurst: cfg.RateLimit.Burst,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// weightsFromConfig overlays the configured policy bonuses on the stock
// weights. Unset fields keep the stock value.
func weightsFromConfig(r config.RankingConfig) searchuc.Weights {
	w := searchuc.DefaultWeights()
	if r.FreshnessDays > 0 {
		w.FreshnessWindow = time.Duration(r.FreshnessDays) * 24 * time.Hour
	}
	if r.FreshnessBonus != nil {
		w.FreshnessBonus = *r.FreshnessBonus
	}
	if r.AvailableBonus != nil {
		w.AvailableBonus = *r.AvailableBonus
	}
	if r.ResourceBonus != nil {
		w.ResourceBonus = *r.ResourceBonus
	}
	return w
}
