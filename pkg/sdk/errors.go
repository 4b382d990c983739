package shelf

import (
	"errors"

	"github.com/sony/gobreaker/v2"

	"github.com/kailas-cloud/shelf/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStoreUnavailable = domain.ErrStoreUnavailable
	ErrInvalidFilter    = domain.ErrInvalidFilter
	// ErrCircuitOpen is returned while the catalog breaker rejects calls.
	ErrCircuitOpen = gobreaker.ErrOpenState
)

var errDegraded = errors.New("catalog degraded")
