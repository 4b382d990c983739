// Package db holds the storage facades shared by the catalog adapters.
package db

import (
	"context"
	"fmt"
	"time"
)

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader reads hash-encoded catalog records.
type HashReader interface {
	// HGetAllMulti returns one field map per key, empty for a missing key.
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	// Scan lists hash keys matching pattern, without duplicates.
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Store is the key-value facade used by the Redis/Valkey catalog adapter.
type Store interface {
	Pinger
	HashReader
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Readiness backoff bounds.
const (
	readyBackoffMin = 50 * time.Millisecond
	readyBackoffMax = time.Second
)

// WaitForReady pings p until it answers or timeout expires. The delay
// between attempts doubles up to one second.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	delay := readyBackoffMin
	var lastErr error
	for {
		if lastErr = p.Ping(ctx); lastErr == nil {
			return nil
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("timeout waiting for database: %w (last error: %w)", ctx.Err(), lastErr)
		case <-timer.C:
		}
		delay = min(delay*2, readyBackoffMax)
	}
}
