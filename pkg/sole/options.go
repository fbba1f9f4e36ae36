package sole

import (
	"log/slog"

	"github.com/randalmurphal/sole/pkg/sole/config"
	"github.com/randalmurphal/sole/pkg/sole/observability"
)

// typeConfig holds pre-validation settings for a type definition.
type typeConfig[T, A any] struct {
	strategy Strategy[T, A]
	resolve  func(A) (T, bool)
	record   func(T, A)
	release  func(T)

	strictRelease bool
	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
}

// defaultTypeConfig returns the default definition settings: default slot
// strategy, loose release, no logging, no-op metrics and tracing.
func defaultTypeConfig[T, A any]() typeConfig[T, A] {
	return typeConfig[T, A]{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a type definition.
type Option[T, A any] func(*typeConfig[T, A])

// WithStrategy supplies a complete custom strategy. Mutually exclusive
// with WithResolve, WithRecord and WithRelease.
//
// Example:
//
//	cache := sole.NewKeyed[*Conn, string, string](
//	    func(dsn string) string { return dsn },
//	    func(c *Conn) string { return c.DSN },
//	)
//	connType, err := sole.Define("conn", allocConn, initConn,
//	    sole.WithStrategy[*Conn, string](cache),
//	)
func WithStrategy[T, A any](s Strategy[T, A]) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.strategy = s
	}
}

// WithResolve supplies the resolve hook. A type must supply all three
// hooks or none; Define fails with IncompleteStrategyError otherwise.
func WithResolve[T, A any](fn func(args A) (T, bool)) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.resolve = fn
	}
}

// WithRecord supplies the record hook. See WithResolve.
func WithRecord[T, A any](fn func(inst T, args A)) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.record = fn
	}
}

// WithRelease supplies the release hook. See WithResolve.
func WithRelease[T, A any](fn func(inst T)) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.release = fn
	}
}

// WithStrictRelease makes Release take the type lock before calling the
// strategy. The baseline contract leaves Release unlocked, accepting a
// narrow window where a release racing an in-flight obtain lets an old
// and a new instance coexist in external hands. Strict mode closes that
// window at the cost of releases blocking behind constructions.
func WithStrictRelease[T, A any]() Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.strictRelease = true
	}
}

// WithLogger attaches a structured logger to the type. Definition,
// construction and release events are logged. A nil logger disables
// logging (the default).
func WithLogger[T, A any](logger *slog.Logger) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		c.logger = logger
	}
}

// WithMetrics attaches a metrics recorder to the type.
//
// Example:
//
//	sole.WithMetrics[*Conn, string](observability.NewMetricsRecorder())
func WithMetrics[T, A any](m observability.MetricsRecorder) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing attaches a span manager to the type.
func WithTracing[T, A any](s observability.SpanManager) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithConfig applies settings loaded from a config file: strict_release,
// metrics, tracing and log_level.
//
// Example:
//
//	cfg, err := config.FromFile("sole.yaml")
//	if err != nil {
//	    return err
//	}
//	dbType, err := sole.Define("database", allocDB, initDB,
//	    sole.WithConfig[*DB, DSN](cfg),
//	)
func WithConfig[T, A any](cfg config.Config) Option[T, A] {
	return func(c *typeConfig[T, A]) {
		s := cfg.Settings()
		if s.StrictRelease {
			c.strictRelease = true
		}
		if s.Metrics {
			c.metrics = observability.NewMetricsRecorder()
		}
		if s.Tracing {
			c.spans = observability.NewSpanManager()
		}
		if cfg.Has("log_level") {
			c.logger = observability.NewLogger(s.LogLevel)
		}
	}
}
