package cvsscore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/quay/cvsscore/cvss2"
	"github.com/quay/cvsscore/cvss3"
	"github.com/quay/cvsscore/cvss4"
	"github.com/quay/cvsscore/toolkit/log"
)

// Score is the result of scoring a vector.
type Score struct {
	// Value is in [0, 10], rounded to one decimal place.
	Value    float64  `json:"score"`
	Severity Severity `json:"severity"`
}

// Engine parses and scores vectors of every supported version.
//
// An Engine is safe for concurrent use. Engines hold no per-call state; the
// only reason to have more than one is to use different [Config] values.
type Engine struct {
	schemes   map[Version]scheme
	tracer    trace.Tracer
	limit     int
	telemetry bool
}

// Scheme is the parser and calculator for one version.
type scheme struct {
	parse func(string) MetricSet
	score func(context.Context, MetricSet) float64
}

// New returns an Engine configured by "cfg". A nil Config uses the defaults.
func New(ctx context.Context, cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		limit:     cfg.batchLimit(),
		telemetry: !cfg.DisableTelemetry,
		tracer:    tracer,
	}
	if !e.telemetry {
		e.tracer = noop.NewTracerProvider().Tracer(instrumentationName)
	}
	e.schemes = map[Version]scheme{
		V2: {
			parse: func(s string) MetricSet { return FromV2(cvss2.Parse(s)) },
			score: func(_ context.Context, m MetricSet) float64 { return cvss2.Score(m.v2) },
		},
		V30: {
			parse: func(s string) MetricSet { return FromV30(cvss3.Parse(s)) },
			score: func(_ context.Context, m MetricSet) float64 { return cvss3.Score(m.v3, cvss3.V30) },
		},
		V31: {
			parse: func(s string) MetricSet { return FromV31(cvss3.Parse(s)) },
			score: func(_ context.Context, m MetricSet) float64 { return cvss3.Score(m.v3, cvss3.V31) },
		},
		V40: {
			parse: func(s string) MetricSet { return FromV4(cvss4.Parse(s)) },
			score: e.scoreV4,
		},
	}
	slog.DebugContext(ctx, "engine created", "batch_limit", e.limit, "telemetry", e.telemetry)
	return e, nil
}

// CalculateV4 is the v4.0 calculator used by every Engine.
var calculateV4 = cvss4.Calculate

func (e *Engine) scoreV4(ctx context.Context, m MetricSet) float64 {
	res := calculateV4(m.v4)
	if res.Missing {
		slog.WarnContext(ctx, "macrovector missing from lookup table, scoring as 0",
			"macrovector", res.MacroVector.String())
		if e.telemetry {
			recordMissing(ctx, res.MacroVector.String())
		}
	}
	return res.Score
}

func (e *Engine) scheme(op string, v Version) (scheme, error) {
	s, ok := e.schemes[v]
	if !ok {
		return scheme{}, &Error{
			Op:      op,
			Kind:    ErrInvalid,
			Message: fmt.Sprintf("unsupported version: %v", v),
		}
	}
	return s, nil
}

// Parse parses the vector string "vec" as version "v".
//
// Parsing is permissive; the only error is an unknown version.
func (e *Engine) Parse(ctx context.Context, v Version, vec string) (MetricSet, error) {
	_, span := e.tracer.Start(ctx, "Parse", trace.WithAttributes(
		attribute.String("cvss.version", v.String()),
	))
	defer span.End()
	s, err := e.scheme("cvsscore.Engine.Parse", v)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown version")
		return MetricSet{}, err
	}
	m := s.parse(vec)
	span.SetStatus(codes.Ok, "")
	return m, nil
}

// Score scores the MetricSet "m".
func (e *Engine) Score(ctx context.Context, m MetricSet) (Score, error) {
	ctx, span := e.tracer.Start(ctx, "Score", trace.WithAttributes(
		attribute.String("cvss.version", m.version.String()),
	))
	defer span.End()
	s, err := e.scheme("cvsscore.Engine.Score", m.version)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown version")
		return Score{}, err
	}

	start := time.Now()
	val := s.score(ctx, m)
	out := Score{Value: val, Severity: Classify(val)}
	if e.telemetry {
		recordScore(ctx, m.version, out.Severity, time.Since(start))
	}
	span.SetAttributes(
		attribute.Float64("cvss.score", out.Value),
		attribute.String("cvss.severity", out.Severity.String()),
	)
	span.SetStatus(codes.Ok, "")
	slog.DebugContext(ctx, "scored", "score", out.Value, "severity", out.Severity)
	return out, nil
}

// ScoreVector parses the vector string "vec" as version "v" and scores it.
func (e *Engine) ScoreVector(ctx context.Context, v Version, vec string) (Score, error) {
	ctx = log.WithVector(ctx, v.String(), vec)
	m, err := e.Parse(ctx, v, vec)
	if err != nil {
		return Score{}, err
	}
	return e.Score(ctx, m)
}

// Request is one item of a batch.
type Request struct {
	Version Version `json:"version"`
	Vector  string  `json:"vector"`
}

// Result is the outcome of one item of a batch. Exactly one of Score and Err
// is meaningful.
type Result struct {
	Request
	Score Score `json:"score"`
	Err   error `json:"-"`
}

// ScoreBatch scores every Request in "reqs" concurrently, up to the
// configured limit.
//
// The returned slice is parallel to "reqs". Per-item errors are reported in
// the corresponding Result and don't stop the batch. The returned error is
// only non-nil if "ctx" is canceled before every item is scored; items not
// reached have an [ErrCanceled] error.
func (e *Engine) ScoreBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	id := uuid.New()
	ctx = log.With(ctx, "batch", id.String())
	ctx, span := e.tracer.Start(ctx, "ScoreBatch", trace.WithAttributes(
		attribute.String("cvss.batch.id", id.String()),
		attribute.Int("cvss.batch.size", len(reqs)),
	))
	defer span.End()
	slog.DebugContext(ctx, "batch start", "size", len(reqs), "limit", e.limit)

	res := make([]Result, len(reqs))
	for i := range reqs {
		res[i].Request = reqs[i]
	}
	done := make([]bool, len(reqs))

	var (
		mu         sync.Mutex
		ok, failed int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)
Submit:
	for i := range reqs {
		select {
		case <-gctx.Done():
			break Submit
		default:
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := e.ScoreVector(gctx, reqs[i].Version, reqs[i].Vector)
			res[i].Score, res[i].Err = s, err
			done[i] = true
			mu.Lock()
			if err != nil {
				failed++
			} else {
				ok++
			}
			mu.Unlock()
			return nil
		})
	}
	// Goroutines only report cancellation, so this error is redundant with
	// the done slice.
	_ = g.Wait()
	if e.telemetry {
		recordBatch(ctx, ok, failed)
	}

	if ok+failed != len(reqs) {
		cause := context.Cause(ctx)
		if cause == nil {
			cause = context.Canceled
		}
		err := &Error{
			Op:    "cvsscore.Engine.ScoreBatch",
			Kind:  ErrCanceled,
			Inner: cause,
		}
		for i := range res {
			if !done[i] {
				res[i].Err = err
			}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch canceled")
		slog.InfoContext(ctx, "batch canceled", "scored", ok+failed, "size", len(reqs))
		return res, err
	}
	span.SetStatus(codes.Ok, "")
	slog.DebugContext(ctx, "batch done", "ok", ok, "failed", failed)
	return res, nil
}

// DefaultEngine is used by the package-level functions.
var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New(context.Background(), nil)
	if err != nil {
		panic(fmt.Sprintf("programmer error: default engine: %v", err))
	}
	return e
})

// Parse parses "vec" as version "v" using a default [Engine].
func Parse(ctx context.Context, v Version, vec string) (MetricSet, error) {
	return defaultEngine().Parse(ctx, v, vec)
}

// ScoreVector parses and scores "vec" as version "v" using a default [Engine].
func ScoreVector(ctx context.Context, v Version, vec string) (Score, error) {
	return defaultEngine().ScoreVector(ctx, v, vec)
}

// IsCanceled reports whether "err" is a batch cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
