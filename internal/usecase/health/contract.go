package health

import "context"

// StorePinger checks catalog store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// BreakerChecker reports whether the store circuit breaker is open.
type BreakerChecker interface {
	IsOpen() bool
}
