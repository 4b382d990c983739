package shelf

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option interface {
	apply(*clientConfig)
}

type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver      string
	dsn         string
	addrs       []string
	password    string
	keyPrefix   string
	items       []Book
	fixturePath string

	ensureSchema bool
	ranking      *Ranking
	defaultLimit int
	maxLimit     int
	breaker      *BreakerSettings

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// BreakerSettings tunes the circuit breaker in front of the catalog store.
type BreakerSettings struct {
	MinRequests      uint32
	FailureRatio     float64
	OpenTimeout      time.Duration
	HalfOpenMaxCalls uint32
}

// WithPostgres uses a PostgreSQL catalog reachable at dsn.
func WithPostgres(dsn string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverPostgres
		c.dsn = dsn
	})
}

// WithRedis uses a Redis catalog stored as hashes.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithValkey uses a Valkey catalog stored as hashes.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithKeyPrefix sets the hash key prefix for Redis and Valkey catalogs.
// Default: "shelf:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) { c.keyPrefix = prefix })
}

// WithItems uses an in-process catalog seeded with items.
func WithItems(items ...Book) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMemory
		c.items = append(c.items, items...)
	})
}

// WithFixture uses an in-process catalog loaded from a YAML fixture file.
func WithFixture(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMemory
		c.fixturePath = path
	})
}

// WithEnsureSchema creates the PostgreSQL catalog tables on startup.
func WithEnsureSchema() Option {
	return optionFunc(func(c *clientConfig) { c.ensureSchema = true })
}

// WithRanking overrides the policy bonuses of the relevance score.
func WithRanking(r Ranking) Option {
	return optionFunc(func(c *clientConfig) { c.ranking = &r })
}

// WithLimits sets the default and maximum page size.
func WithLimits(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	})
}

// WithBreaker puts a circuit breaker in front of the catalog store.
func WithBreaker(s BreakerSettings) Option {
	return optionFunc(func(c *clientConfig) { c.breaker = &s })
}

// WithLogger sets a structured logger for SDK operations.
// If not set, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics with the given registerer.
// If not set, metrics are disabled.
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
