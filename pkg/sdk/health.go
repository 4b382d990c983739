package shelf

import (
	"context"
	"time"

	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
)

// HealthStatus represents the aggregated catalog health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // "store" and, with a breaker, "breaker" → "ok"/"error"
}

// Healthy reports whether every check passed.
func (h HealthStatus) Healthy() bool { return h.Status == string(healthuc.Healthy) }

// Health checks the catalog store and, when configured, the circuit breaker.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	h := HealthStatus{Status: string(report.Status), Checks: checks}

	var err error
	if !h.Healthy() {
		err = errDegraded
	}
	c.obs.observe("health", start, err)
	return h
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
