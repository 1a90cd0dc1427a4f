package cvsscore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/quay/cvsscore/cvss4"
	"github.com/quay/cvsscore/test"
)

var metricReader = sdkmetric.NewManualReader()

func TestMain(m *testing.M) {
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(metricReader)))
	os.Exit(m.Run())
}

const (
	vecV2       = `AV:N/AC:L/Au:N/C:P/I:P/A:P`
	vecV30      = `CVSS:3.0/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H`
	vecV31      = `CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H`
	vecV31XSS   = `CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N`
	vecV4       = `CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N`
	vecV4Full   = `CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H`
	vecV4NoVuln = `CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:N/VI:N/VA:N/SC:N/SI:N/SA:N`
)

func TestEngineScore(t *testing.T) {
	ctx := test.Logging(t)
	e, err := New(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	tt := []struct {
		Version Version
		Vector  string
		Want    Score
		Err     error
	}{
		{Version: V2, Vector: vecV2, Want: Score{7.5, High}},
		{Version: V30, Vector: vecV30, Want: Score{9.8, Critical}},
		{Version: V31, Vector: vecV31, Want: Score{9.8, Critical}},
		{Version: V31, Vector: vecV31XSS, Want: Score{6.1, Medium}},
		{Version: V31, Vector: "", Want: Score{0, None}},
		{Version: V40, Vector: vecV4, Want: Score{9.3, Critical}},
		{Version: V40, Vector: vecV4Full, Want: Score{10, Critical}},
		{Version: V40, Vector: vecV4NoVuln, Want: Score{0, None}},
		{Version: VersionUnknown, Vector: vecV31, Err: ErrInvalid},
		{Version: Version(42), Vector: vecV31, Err: ErrInvalid},
	}
	for _, tc := range tt {
		t.Run(fmt.Sprintf("%v/%s", tc.Version, tc.Vector), func(t *testing.T) {
			got, err := e.ScoreVector(ctx, tc.Version, tc.Vector)
			if !errors.Is(err, tc.Err) {
				t.Fatalf("got error: %v, want: %v", err, tc.Err)
			}
			if !cmp.Equal(got, tc.Want) {
				t.Error(cmp.Diff(got, tc.Want))
			}
		})
	}
}

func TestEngineParse(t *testing.T) {
	ctx := test.Logging(t)
	e, err := New(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	m, err := e.Parse(ctx, V31, vecV31+"/E:P/CR:H")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Version(), V31; got != want {
		t.Errorf("version: got: %v, want: %v", got, want)
	}
	if !m.Temporal() || !m.Environmental() {
		t.Errorf("temporal: %v, environmental: %v", m.Temporal(), m.Environmental())
	}
	if _, ok := m.V3(); !ok {
		t.Error("V3 reported not held")
	}
	if _, ok := m.V4(); ok {
		t.Error("V4 reported held")
	}

	// Scoring a MetricSet built directly is the same as scoring the string.
	s, err := e.Score(ctx, m)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ScoreVector(ctx, V31, vecV31+"/E:P/CR:H")
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(s, want) {
		t.Error(cmp.Diff(s, want))
	}

	if _, err := e.Score(ctx, MetricSet{}); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero MetricSet: unexpected error: %v", err)
	}
	if _, err := Parse(ctx, VersionUnknown, vecV2); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown version: unexpected error: %v", err)
	}
}

func TestEngineSpans(t *testing.T) {
	ctx := test.Logging(t)
	e, err := New(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { tp.Shutdown(context.Background()) })
	e.tracer = tp.Tracer(instrumentationName)

	if _, err := e.ScoreVector(ctx, V31, vecV31); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ScoreVector(ctx, Version(42), vecV31); err == nil {
		t.Fatal("expected error")
	}

	type span struct {
		Name   string
		Status codes.Code
		Score  string
	}
	var got []span
	for _, s := range sr.Ended() {
		v := span{Name: s.Name(), Status: s.Status().Code}
		for _, kv := range s.Attributes() {
			if kv.Key == "cvss.severity" {
				v.Score = kv.Value.AsString()
			}
		}
		got = append(got, v)
	}
	want := []span{
		{Name: "Parse", Status: codes.Ok},
		{Name: "Score", Status: codes.Ok, Score: "CRITICAL"},
		{Name: "Parse", Status: codes.Error},
	}
	if !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestScoreBatch(t *testing.T) {
	ctx := test.Logging(t)
	e, err := New(ctx, &Config{BatchConcurrency: 3})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Mixed", func(t *testing.T) {
		var reqs []Request
		var want []Score
		for range 20 {
			reqs = append(reqs,
				Request{Version: V2, Vector: vecV2},
				Request{Version: V31, Vector: vecV31XSS},
				Request{Version: V40, Vector: vecV4},
			)
			want = append(want, Score{7.5, High}, Score{6.1, Medium}, Score{9.3, Critical})
		}
		reqs = append(reqs, Request{Version: Version(42), Vector: vecV2})

		res, err := e.ScoreBatch(ctx, reqs)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(res), len(reqs); got != want {
			t.Fatalf("got %d results, want %d", got, want)
		}
		for i, r := range res[:len(want)] {
			if r.Err != nil {
				t.Errorf("%d: unexpected error: %v", i, r.Err)
			}
			if !cmp.Equal(r.Request, reqs[i]) {
				t.Errorf("%d: %s", i, cmp.Diff(r.Request, reqs[i]))
			}
			if !cmp.Equal(r.Score, want[i]) {
				t.Errorf("%d: %s", i, cmp.Diff(r.Score, want[i]))
			}
		}
		if last := res[len(res)-1]; !errors.Is(last.Err, ErrInvalid) {
			t.Errorf("unexpected error: %v", last.Err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		res, err := e.ScoreBatch(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(res) != 0 {
			t.Errorf("got %d results", len(res))
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		reqs := []Request{
			{Version: V31, Vector: vecV31},
			{Version: V40, Vector: vecV4},
		}
		res, err := e.ScoreBatch(cctx, reqs)
		if !IsCanceled(err) {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("cause missing: %v", err)
		}
		for i, r := range res {
			if !IsCanceled(r.Err) {
				t.Errorf("%d: unexpected error: %v", i, r.Err)
			}
		}
	})
}

// ScoredTotal reports the value of the "cvss.scored" instrument for "version".
func scoredTotal(ctx context.Context, t *testing.T, version string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := metricReader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	var n int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "cvss.scored" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type: %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("version"); ok && v.AsString() == version {
					n += dp.Value
				}
			}
		}
	}
	return n
}

// CounterTotal reports the sum of every data point of the int64 counter
// "name".
func counterTotal(ctx context.Context, t *testing.T, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := metricReader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	var n int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type: %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				n += dp.Value
			}
		}
	}
	return n
}

func TestMissingMacroVector(t *testing.T) {
	ctx := test.Logging(t)
	mv := cvss4.MacroVector{0, 0, 0, 2, 0, 0}
	prev := calculateV4
	t.Cleanup(func() { calculateV4 = prev })
	calculateV4 = func(v cvss4.Vector) cvss4.Result {
		return cvss4.Result{MacroVector: mv, Missing: true}
	}

	for _, tc := range []struct {
		Name  string
		Cfg   *Config
		Delta int64
	}{
		{Name: "Enabled", Cfg: nil, Delta: 1},
		{Name: "Disabled", Cfg: &Config{DisableTelemetry: true}, Delta: 0},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			e, err := New(ctx, tc.Cfg)
			if err != nil {
				t.Fatal(err)
			}
			beforeProm := testutil.ToFloat64(missingCounter)
			beforeOtel := counterTotal(ctx, t, "cvss.macrovector.missing")

			got, err := e.ScoreVector(ctx, V40, vecV4)
			if err != nil {
				t.Fatal(err)
			}
			if want := (Score{0, None}); !cmp.Equal(got, want) {
				t.Error(cmp.Diff(got, want))
			}

			if got, want := testutil.ToFloat64(missingCounter)-beforeProm, float64(tc.Delta); got != want {
				t.Errorf("prometheus: got: %v, want: %v", got, want)
			}
			if got, want := counterTotal(ctx, t, "cvss.macrovector.missing")-beforeOtel, tc.Delta; got != want {
				t.Errorf("otel: got: %v, want: %v", got, want)
			}
		})
	}
}

func TestTelemetry(t *testing.T) {
	ctx := test.Logging(t)
	prom := scoredCounter.WithLabelValues("3.0", "CRITICAL")

	t.Run("Enabled", func(t *testing.T) {
		e, err := New(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}
		beforeProm := testutil.ToFloat64(prom)
		beforeOtel := scoredTotal(ctx, t, "3.0")
		for range 3 {
			if _, err := e.ScoreVector(ctx, V30, vecV30); err != nil {
				t.Fatal(err)
			}
		}
		if got, want := testutil.ToFloat64(prom)-beforeProm, 3.0; got != want {
			t.Errorf("prometheus: got: %v, want: %v", got, want)
		}
		if got, want := scoredTotal(ctx, t, "3.0")-beforeOtel, int64(3); got != want {
			t.Errorf("otel: got: %v, want: %v", got, want)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		e, err := New(ctx, &Config{DisableTelemetry: true})
		if err != nil {
			t.Fatal(err)
		}
		beforeProm := testutil.ToFloat64(prom)
		beforeOtel := scoredTotal(ctx, t, "3.0")
		if _, err := e.ScoreVector(ctx, V30, vecV30); err != nil {
			t.Fatal(err)
		}
		if got := testutil.ToFloat64(prom) - beforeProm; got != 0 {
			t.Errorf("prometheus: got: %v, want: 0", got)
		}
		if got := scoredTotal(ctx, t, "3.0") - beforeOtel; got != 0 {
			t.Errorf("otel: got: %v, want: 0", got)
		}
	})
}

func BenchmarkScoreBatch(b *testing.B) {
	ctx := context.Background()
	e, err := New(ctx, &Config{DisableTelemetry: true})
	if err != nil {
		b.Fatal(err)
	}
	reqs := make([]Request, 0, 300)
	for range 100 {
		reqs = append(reqs,
			Request{Version: V2, Vector: vecV2},
			Request{Version: V31, Vector: vecV31},
			Request{Version: V40, Vector: vecV4},
		)
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := e.ScoreBatch(ctx, reqs); err != nil {
			b.Fatal(err)
		}
	}
}
