package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/quay/cvsscore"
)

//go:generate -command mockgen go run go.uber.org/mock/mockgen -package=main -destination=./mocks_test.go -source=run.go
//go:generate mockgen

// Scorer is the part of [cvsscore.Engine] used by [run].
type scorer interface {
	ScoreBatch(context.Context, []cvsscore.Request) ([]cvsscore.Result, error)
}

// Record is the JSON output for one vector.
type record struct {
	Version  cvsscore.Version  `json:"version"`
	Vector   string            `json:"vector"`
	Score    float64           `json:"score"`
	Severity cvsscore.Severity `json:"severity"`
	Error    string            `json:"error,omitempty"`
}

// Run reads vectors from "in", scores them with "s", and writes the results
// to "out". It reports the number of vectors that could not be scored.
//
// Blank lines and lines starting with "#" are skipped. If the batch is
// canceled, the results already scored are written before the error is
// returned.
func run(ctx context.Context, s scorer, in io.Reader, out io.Writer, opts *options) (int, error) {
	var reqs []cvsscore.Request
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v := opts.Version
		if v == cvsscore.VersionUnknown {
			v = cvsscore.DetectVersion(line)
		}
		reqs = append(reqs, cvsscore.Request{Version: v, Vector: line})
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}
	slog.DebugContext(ctx, "read vectors", "count", len(reqs))

	res, batchErr := s.ScoreBatch(ctx, reqs)
	canceled := errors.Is(batchErr, cvsscore.ErrCanceled)
	if batchErr != nil && !canceled {
		return 0, batchErr
	}

	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)
	var failed int
	for _, r := range res {
		if canceled && r.Err != nil {
			continue
		}
		if r.Err != nil {
			failed++
			slog.WarnContext(ctx, "unable to score vector", "vector", r.Vector, "reason", r.Err)
		}
		if opts.JSON {
			rec := record{
				Version:  r.Version,
				Vector:   r.Vector,
				Score:    r.Score.Value,
				Severity: r.Score.Severity,
			}
			if r.Err != nil {
				rec.Error = r.Err.Error()
			}
			if err := enc.Encode(&rec); err != nil {
				return failed, err
			}
			continue
		}
		bw.WriteString(r.Vector)
		bw.WriteByte('\t')
		if r.Err != nil {
			bw.WriteString("error: ")
			bw.WriteString(r.Err.Error())
		} else {
			bw.WriteString(strconv.FormatFloat(r.Score.Value, 'f', 1, 64))
			bw.WriteByte('\t')
			bw.WriteString(r.Score.Severity.String())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return failed, err
	}
	return failed, batchErr
}
