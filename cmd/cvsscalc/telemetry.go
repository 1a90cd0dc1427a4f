package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/quay/cvsscore/toolkit/log"
)

const serviceName = `cvsscalc`

// SetupTelemetry installs the default [slog.Logger] and, if "proto" is not
// empty, OTLP exporters for traces, metrics, and logs.
//
// Exporter endpoints are configured with the standard OTEL_EXPORTER_OTLP_*
// environment variables. The returned function flushes and stops everything.
func setupTelemetry(ctx context.Context, proto string, lv slog.Level) (func(context.Context) error, error) {
	text := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})
	if proto == "" {
		slog.SetDefault(slog.New(log.WrapHandler(text)))
		return func(context.Context) error { return nil }, nil
	}

	var (
		tc  otlptrace.Client
		me  sdkmetric.Exporter
		le  sdklog.Exporter
		err error
	)
	switch proto {
	case "http":
		tc = otlptracehttp.NewClient()
		if me, err = otlpmetrichttp.New(ctx); err != nil {
			return nil, fmt.Errorf("otlp metric exporter: %w", err)
		}
		if le, err = otlploghttp.New(ctx); err != nil {
			return nil, fmt.Errorf("otlp log exporter: %w", err)
		}
	case "grpc":
		tc = otlptracegrpc.NewClient()
		if me, err = otlpmetricgrpc.New(ctx); err != nil {
			return nil, fmt.Errorf("otlp metric exporter: %w", err)
		}
		if le, err = otlploggrpc.New(ctx); err != nil {
			return nil, fmt.Errorf("otlp log exporter: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown OTLP protocol %q", proto)
	}
	te, err := otlptrace.New(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("otlp trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(r),
		sdktrace.WithBatcher(te),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(r),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(me)),
	)
	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(r),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(le)),
	)
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	global.SetLoggerProvider(lp)

	// Records go to both stderr and the OTLP collector.
	slog.SetDefault(slog.New(log.WrapHandler(fanout{
		text,
		otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(lp)),
	})))

	return func(ctx context.Context) error {
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}, nil
}

// Fanout is a [slog.Handler] that sends records to every member.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// DumpMetrics writes the default Prometheus registry to "w" in the text
// exposition format.
func dumpMetrics(w io.Writer) error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
