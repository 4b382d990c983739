package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline and catalog store Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of search requests by detected intent",
		},
		[]string{"intent"}, // "none" when the query is empty
	)

	SearchCorrectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_typo_corrections_total",
			Help:      "Total number of query tokens replaced by the typo table",
		},
	)

	SearchResultsCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results_per_page",
			Help:      "Number of items returned on a search page",
			Buckets:   []float64{0, 1, 5, 10, 20, 30, 50},
		},
	)

	SearchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_failures_total",
			Help:      "Total number of search requests aborted by a store failure",
		},
	)

	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Catalog store operation duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"driver", "op", "status"},
	)

	StoreBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_breaker_state",
			Help:      "Catalog store circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and store metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchCorrectionsTotal)
	prometheus.MustRegister(SearchResultsCount)
	prometheus.MustRegister(SearchFailuresTotal)
	prometheus.MustRegister(StoreOperationDuration)
	prometheus.MustRegister(StoreBreakerState)
	searchMetricsRegistered = true
}
