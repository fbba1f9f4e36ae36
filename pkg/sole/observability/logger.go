// Package observability provides production-grade observability features
// for sole: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"os"
	"time"
)

// NewLogger creates a text logger writing to stderr at the given level.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// EnrichLogger adds sole context to a logger.
// Returns a new logger with type_name and construct_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "database", constructID)
//	enriched.Info("doing work") // includes type_name, construct_id
func EnrichLogger(logger *slog.Logger, typeName, constructID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("type_name", typeName),
		slog.String("construct_id", constructID),
	)
}

// LogDefine logs a successful type definition.
func LogDefine(logger *slog.Logger, typeName, typeID, strategy string) {
	if logger == nil {
		return
	}
	logger.Info("type defined",
		slog.String("type_name", typeName),
		slog.String("type_id", typeID),
		slog.String("strategy", strategy),
	)
}

// LogConstruct logs a completed construction.
func LogConstruct(logger *slog.Logger, typeName, constructID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("instance constructed",
		slog.String("type_name", typeName),
		slog.String("construct_id", constructID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConstructError logs a construction failure.
func LogConstructError(logger *slog.Logger, typeName, constructID string, err error) {
	if logger == nil {
		return
	}
	logger.Error("construction failed",
		slog.String("type_name", typeName),
		slog.String("construct_id", constructID),
		slog.String("error", err.Error()),
	)
}

// LogRelease logs an instance release.
func LogRelease(logger *slog.Logger, typeName string, strict bool) {
	if logger == nil {
		return
	}
	logger.Debug("instance released",
		slog.String("type_name", typeName),
		slog.Bool("strict", strict),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
