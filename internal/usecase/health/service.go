package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Check names reported in Report.Checks.
const (
	CheckStore   = "store"
	CheckBreaker = "breaker"
)

// DefaultPingTimeout bounds the store probe so a hung backend reports
// an error instead of stalling the health endpoint.
const DefaultPingTimeout = 2 * time.Second

// Service coordinates health checks.
type Service struct {
	store       StorePinger
	breaker     BreakerChecker
	pingTimeout time.Duration
}

// New creates a Service. breaker can be nil.
func New(store StorePinger, breaker BreakerChecker) *Service {
	return &Service{store: store, breaker: breaker, pingTimeout: DefaultPingTimeout}
}

// WithPingTimeout overrides the store probe timeout.
func (s *Service) WithPingTimeout(d time.Duration) *Service {
	if d > 0 {
		s.pingTimeout = d
	}
	return s
}

// Check runs every configured check. Any failing check degrades the report.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{CheckStore: s.pingStore(ctx)}
	if s.breaker != nil {
		checks[CheckBreaker] = resultOf(!s.breaker.IsOpen())
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}
	return Report{Status: status, Checks: checks}
}

func (s *Service) pingStore(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()
	return resultOf(s.store.Ping(ctx) == nil)
}

func resultOf(ok bool) CheckResult {
	if ok {
		return CheckOK
	}
	return CheckError
}
