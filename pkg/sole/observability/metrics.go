package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records sole metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordObtain records an obtain call. fastPath is true when the call
	// was satisfied by the unlocked resolve without taking the type lock.
	RecordObtain(ctx context.Context, typeName string, fastPath bool, err error)

	// RecordConstruction records a construction attempt with its duration
	// and error status.
	RecordConstruction(ctx context.Context, typeName string, duration time.Duration, err error)

	// RecordRelease records an instance release.
	RecordRelease(ctx context.Context, typeName string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	obtains          metric.Int64Counter
	obtainErrors     metric.Int64Counter
	constructions    metric.Int64Counter
	constructLatency metric.Float64Histogram
	constructErrors  metric.Int64Counter
	releases         metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("sole")

	obtains, err := meter.Int64Counter("sole.obtain.total",
		metric.WithDescription("Number of obtain calls"),
	)
	if err != nil {
		return nil, err
	}

	obtainErrors, err := meter.Int64Counter("sole.obtain.errors",
		metric.WithDescription("Number of obtain calls that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	constructions, err := meter.Int64Counter("sole.construct.total",
		metric.WithDescription("Number of construction attempts"),
	)
	if err != nil {
		return nil, err
	}

	constructLatency, err := meter.Float64Histogram("sole.construct.latency_ms",
		metric.WithDescription("Construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	constructErrors, err := meter.Int64Counter("sole.construct.errors",
		metric.WithDescription("Number of failed constructions"),
	)
	if err != nil {
		return nil, err
	}

	releases, err := meter.Int64Counter("sole.release.total",
		metric.WithDescription("Number of instance releases"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		obtains:          obtains,
		obtainErrors:     obtainErrors,
		constructions:    constructions,
		constructLatency: constructLatency,
		constructErrors:  constructErrors,
		releases:         releases,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordObtain records an obtain call.
func (m *otelMetrics) RecordObtain(ctx context.Context, typeName string, fastPath bool, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("type_name", typeName),
		attribute.Bool("fast_path", fastPath),
	}

	m.obtains.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		m.obtainErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordConstruction records a construction attempt.
func (m *otelMetrics) RecordConstruction(ctx context.Context, typeName string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("type_name", typeName),
	}

	m.constructions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.constructLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.constructErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRelease records an instance release.
func (m *otelMetrics) RecordRelease(ctx context.Context, typeName string) {
	attrs := []attribute.KeyValue{
		attribute.String("type_name", typeName),
	}
	m.releases.Add(ctx, 1, metric.WithAttributes(attrs...))
}
