package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shelf/internal/domain"
	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/filter"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/metrics"
	searchuc "github.com/kailas-cloud/shelf/internal/usecase/search"
)

// Compile-time check: BreakerStore implements usecase/search.Store.
var _ searchuc.Store = (*BreakerStore)(nil)

// BreakerConfig holds circuit breaker thresholds.
type BreakerConfig struct {
	Name             string
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
}

// BreakerStore fails fast with domain.ErrStoreUnavailable while the store
// keeps failing. Calls are never retried.
type BreakerStore struct {
	inner   searchuc.Store
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps inner with a circuit breaker.
func NewBreakerStore(inner searchuc.Store, cfg BreakerConfig, logger *zap.Logger) *BreakerStore {
	if cfg.Name == "" {
		cfg.Name = "catalog"
	}
	metrics.StoreBreakerState.WithLabelValues(cfg.Name).Set(stateValue(gobreaker.StateClosed))

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenMaxCalls,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up says nothing about store health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.StoreBreakerState.WithLabelValues(name).Set(stateValue(to))
			logger.Warn("Catalog store breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &BreakerStore{inner: inner, breaker: gobreaker.NewCircuitBreaker[any](settings)}
}

// Count proxies Count through the breaker.
func (b *BreakerStore) Count(ctx context.Context, expr filter.Expression) (int, error) {
	v, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Count(ctx, expr)
	})
	if err != nil {
		return 0, wrapOpen(err)
	}
	n, _ := v.(int)
	return n, nil
}

// Fetch proxies Fetch through the breaker.
func (b *BreakerStore) Fetch(
	ctx context.Context, expr filter.Expression, order request.Sort, offset, limit int,
) ([]domcat.Item, error) {
	v, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Fetch(ctx, expr, order, offset, limit)
	})
	if err != nil {
		return nil, wrapOpen(err)
	}
	items, _ := v.([]domcat.Item)
	return items, nil
}

// Categories proxies Categories through the breaker.
func (b *BreakerStore) Categories(ctx context.Context, ids []string) (map[string][]string, error) {
	v, err := b.breaker.Execute(func() (any, error) {
		return b.inner.Categories(ctx, ids)
	})
	if err != nil {
		return nil, wrapOpen(err)
	}
	cats, _ := v.(map[string][]string)
	return cats, nil
}

// IsCircuitOpen reports whether err was produced by an open or saturated breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func wrapOpen(err error) error {
	if IsCircuitOpen(err) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// IsOpen reports whether the breaker currently rejects calls.
func (b *BreakerStore) IsOpen() bool {
	return b.breaker.State() == gobreaker.StateOpen
}
