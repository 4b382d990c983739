package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shelf/internal/config"
	dbPostgres "github.com/kailas-cloud/shelf/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/shelf/internal/db/redis"
	"github.com/kailas-cloud/shelf/internal/repository/catalog/memory"
	pgcatalog "github.com/kailas-cloud/shelf/internal/repository/catalog/postgres"
	rediscatalog "github.com/kailas-cloud/shelf/internal/repository/catalog/redis"
	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// catalogBackend is a driver-specific store plus its health probe and cleanup.
type catalogBackend struct {
	store  searchuc.Store
	pinger healthuc.StorePinger
	close  func()
}

func openCatalog(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (catalogBackend, error) {
	readiness := time.Duration(cfg.ReadinessTimeout) * time.Second

	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := dbPostgres.Open(dbPostgres.Config{DSN: cfg.DSN})
		if err != nil {
			return catalogBackend{}, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.WaitForReady(ctx, readiness); err != nil {
			pg.Close()
			return catalogBackend{}, fmt.Errorf("postgres not ready: %w", err)
		}
		repo := pgcatalog.New(pg.DB())
		if cfg.EnsureSchema {
			if err := repo.EnsureSchema(ctx); err != nil {
				pg.Close()
				return catalogBackend{}, fmt.Errorf("ensure schema: %w", err)
			}
			logger.Info("Catalog schema ensured")
		}
		return catalogBackend{store: repo, pinger: pg, close: pg.Close}, nil

	case config.DriverRedis, config.DriverValkey:
		kv, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return catalogBackend{}, fmt.Errorf("open %s: %w", cfg.Driver, err)
		}
		if err := kv.WaitForReady(ctx, readiness); err != nil {
			kv.Close()
			return catalogBackend{}, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
		}
		return catalogBackend{
			store:  rediscatalog.New(kv, cfg.KeyPrefix),
			pinger: kv,
			close:  kv.Close,
		}, nil

	case config.DriverMemory:
		mem := memory.New()
		if cfg.FixturePath != "" {
			if err := mem.LoadFile(cfg.FixturePath); err != nil {
				return catalogBackend{}, err
			}
			logger.Info("Catalog fixture loaded",
				zap.String("path", cfg.FixturePath),
				zap.Int("items", mem.Len()),
			)
		}
		return catalogBackend{store: mem, pinger: mem, close: func() {}}, nil

	default:
		return catalogBackend{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
