package cvsscore

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// TelemetrySchemaVersion is the OpenTelemetry "telemetry schema" version for
// this package.
const telemetrySchemaVersion = `0.1.0`

const instrumentationName = `github.com/quay/cvsscore`

// Tracer and Meter singletons for this package.
var (
	tracer trace.Tracer
	meter  metric.Meter
)

// The OpenTelemetry instruments used in this package.
var (
	scoredCount    metric.Int64Counter
	scoreDuration  metric.Float64Histogram
	missingCount   metric.Int64Counter
	batchItemCount metric.Int64Counter
)

// The Prometheus collectors used in this package.
var (
	scoredCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cvsscore",
			Subsystem: "engine",
			Name:      "scored_total",
			Help:      "Total number of vectors scored, by version and qualitative severity.",
		},
		[]string{"version", "severity"},
	)
	scoreDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cvsscore",
			Subsystem: "engine",
			Name:      "score_duration_seconds",
			Help:      "The duration of score calculations, by version.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
		[]string{"version"},
	)
	missingCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cvsscore",
			Subsystem: "engine",
			Name:      "macrovector_missing_total",
			Help:      "Total number of v4.0 vectors whose MacroVector had no lookup table entry.",
		},
	)
)

// Must is a panic-or-return helper for [init].
func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

func init() {
	tracer = otel.Tracer(instrumentationName,
		trace.WithInstrumentationVersion(telemetrySchemaVersion),
		trace.WithSchemaURL(semconv.SchemaURL),
	)
	meter = otel.Meter(instrumentationName,
		metric.WithInstrumentationVersion(telemetrySchemaVersion),
	)

	scoredCount = must(meter.Int64Counter("cvss.scored",
		metric.WithDescription("The number of vectors scored, by version and severity attributes."),
		metric.WithUnit("{vector}"),
	))
	scoreDuration = must(meter.Float64Histogram("cvss.score_time",
		metric.WithDescription("The duration of score calculations, by version attribute."),
		metric.WithUnit("s"),
	))
	missingCount = must(meter.Int64Counter("cvss.macrovector.missing",
		metric.WithDescription("The number of v4.0 vectors whose MacroVector had no lookup table entry."),
		metric.WithUnit("{vector}"),
	))
	batchItemCount = must(meter.Int64Counter("cvss.batch.items",
		metric.WithDescription("The number of vectors submitted in batches, by outcome attribute."),
		metric.WithUnit("{vector}"),
	))
}

// RecordScore records a finished score calculation.
func recordScore(ctx context.Context, v Version, s Severity, d time.Duration) {
	ver, sev := v.String(), s.String()
	scoredCounter.WithLabelValues(ver, sev).Inc()
	scoreDurationHistogram.WithLabelValues(ver).Observe(d.Seconds())
	scoredCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("version", ver),
		attribute.String("severity", sev),
	))
	scoreDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("version", ver),
	))
}

// RecordMissing records a MacroVector lookup miss.
func recordMissing(ctx context.Context, mv string) {
	missingCounter.Inc()
	missingCount.Add(ctx, 1, metric.WithAttributes(attribute.String("macrovector", mv)))
}

// RecordBatch records the outcome of the items of a batch.
func recordBatch(ctx context.Context, ok, failed int) {
	batchItemCount.Add(ctx, int64(ok), metric.WithAttributes(attribute.String("outcome", "ok")))
	batchItemCount.Add(ctx, int64(failed), metric.WithAttributes(attribute.String("outcome", "error")))
}
