package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shelf/internal/domain"
	"github.com/kailas-cloud/shelf/internal/domain/search/request"
	"github.com/kailas-cloud/shelf/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/shelf/internal/logger"
	healthuc "github.com/kailas-cloud/shelf/internal/usecase/health"
)

const internalErrorMessage = "Internal server error"

// Searcher runs the search pipeline.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) (*result.Response, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, r *http.Request, err error) bool

// Server serves the catalog search API.
type Server struct {
	search        Searcher
	health        *healthuc.Service
	limits        request.Limits
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search Searcher, health *healthuc.Service, limits request.Limits, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		limits: limits,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		s.storeUnavailableHandler,
	}
	return s
}

// SearchBooks handles GET /search.
func (s *Server) SearchBooks(w http.ResponseWriter, r *http.Request) {
	req := bindSearchParams(r).toRequest(s.limits)
	ctx := logpkg.WithFields(r.Context(), s.logger,
		zap.String("search_query", req.Query()),
		zap.Int("page", req.Page()),
	)
	r = r.WithContext(ctx)

	resp, err := s.search.Search(ctx, &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToDTO(resp, &req))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// storeUnavailableHandler reports a tripped breaker without a stack trace;
// the breaker already logged the transition.
func (s *Server) storeUnavailableHandler(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		return false
	}
	logpkg.FromContext(r.Context(), s.logger).Warn("Catalog store unavailable", zap.Error(err))
	writeError(w, http.StatusInternalServerError, internalErrorMessage)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, r, err) {
			return
		}
	}
	logpkg.FromContext(r.Context(), s.logger).Error("Search failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, internalErrorMessage)
}
