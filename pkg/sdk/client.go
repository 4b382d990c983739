package shelf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/zap"

	dbPostgres "github.com/kailas-cloud/shelf/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/shelf/internal/db/redis"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
	repocat "github.com/kailas-cloud/shelf/internal/repository/catalog"
	"github.com/kailas-cloud/shelf/internal/repository/catalog/memory"
	pgcatalog "github.com/kailas-cloud/shelf/internal/repository/catalog/postgres"
	rediscatalog "github.com/kailas-cloud/shelf/internal/repository/catalog/redis"
	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "shelf:"
)

const (
	driverPostgres = "postgres"
	driverRedis    = "redis"
	driverValkey   = "valkey"
	driverMemory   = "memory"
)

// Internal interfaces, replaced in tests.
type searchUseCase interface {
	Search(ctx context.Context, req *request.Request) (*result.Response, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Client is the shelf SDK entry point.
type Client struct {
	pinger    pinger
	closeFn   func()
	searchSvc searchUseCase
	healthSvc healthUseCase
	limits    request.Limits
	obs       *observer
}

// backend is a driver-specific catalog store plus its probe and cleanup.
type backend struct {
	store  searchuc.Store
	pinger pinger
	close  func()
}

// New creates a shelf Client and connects to the catalog.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New(
			"shelf: catalog required (use WithPostgres, WithRedis, WithValkey, WithItems or WithFixture)",
		)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return wireClient(b, cfg, obs), nil
}

func openBackend(ctx context.Context, cfg *clientConfig) (backend, error) {
	switch cfg.driver {
	case driverPostgres:
		if cfg.dsn == "" {
			return backend{}, errors.New("shelf: postgres dsn required")
		}
		pg, err := dbPostgres.Open(dbPostgres.Config{DSN: cfg.dsn})
		if err != nil {
			return backend{}, fmt.Errorf("shelf: open postgres: %w", err)
		}
		if err := pg.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			pg.Close()
			return backend{}, fmt.Errorf("shelf: database not ready: %w", err)
		}
		repo := pgcatalog.New(pg.DB())
		if cfg.ensureSchema {
			if err := repo.EnsureSchema(ctx); err != nil {
				pg.Close()
				return backend{}, fmt.Errorf("shelf: ensure schema: %w", err)
			}
		}
		return backend{store: repo, pinger: pg, close: pg.Close}, nil

	case driverRedis, driverValkey:
		kv, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return backend{}, fmt.Errorf("shelf: create %s store: %w", cfg.driver, err)
		}
		if err := kv.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			kv.Close()
			return backend{}, fmt.Errorf("shelf: database not ready: %w", err)
		}
		return backend{
			store:  rediscatalog.New(kv, cfg.keyPrefix),
			pinger: kv,
			close:  kv.Close,
		}, nil

	case driverMemory:
		mem := memory.New()
		if cfg.fixturePath != "" {
			if err := mem.LoadFile(cfg.fixturePath); err != nil {
				return backend{}, fmt.Errorf("shelf: %w", err)
			}
		}
		for _, b := range cfg.items {
			mem.Add(toInternalItem(b))
		}
		return backend{store: mem, pinger: mem, close: func() {}}, nil

	default:
		return backend{}, fmt.Errorf("shelf: unknown driver %q", cfg.driver)
	}
}

func wireClient(b backend, cfg *clientConfig, obs *observer) *Client {
	var store searchuc.Store = repocat.NewInstrumentedStore(b.store, cfg.driver)

	var breaker healthuc.BreakerChecker
	if cfg.breaker != nil {
		bs := repocat.NewBreakerStore(store, repocat.BreakerConfig{
			Name:             "shelf-sdk-" + cfg.driver,
			MinRequests:      cfg.breaker.MinRequests,
			FailureRatio:     cfg.breaker.FailureRatio,
			OpenTimeout:      cfg.breaker.OpenTimeout,
			HalfOpenMaxCalls: cfg.breaker.HalfOpenMaxCalls,
		}, zap.NewNop())
		store = bs
		breaker = bs
	}

	return &Client{
		pinger:    b.pinger,
		closeFn:   b.close,
		searchSvc: searchuc.New(store, weightsFor(cfg.ranking)),
		healthSvc: healthuc.New(b.pinger, breaker),
		limits:    request.Limits{Default: cfg.defaultLimit, Max: cfg.maxLimit},
		obs:       obs,
	}
}

// weightsFor overlays the configured bonuses on the stock weights.
func weightsFor(r *Ranking) searchuc.Weights {
	w := searchuc.DefaultWeights()
	if r == nil {
		return w
	}
	w.FreshnessWindow = r.FreshnessWindow
	w.FreshnessBonus = r.FreshnessBonus
	w.AvailableBonus = r.AvailableBonus
	w.ResourceBonus = r.ResourceBonus
	return w
}

// Close releases all resources.
func (c *Client) Close() {
	if c.closeFn != nil {
		c.closeFn()
	}
}

// Ping checks catalog connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search runs one catalog search. Malformed parameters fall back to their
// defaults; only a catalog failure returns an error.
func (c *Client) Search(ctx context.Context, p SearchParams) (_ *SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err, slog.String("query", p.Query)) }()

	req := toInternalRequest(p, c.limits)
	resp, err := c.searchSvc.Search(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	res := fromInternalResponse(resp)
	c.obs.observeSearch(res)
	return res, nil
}
