package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"go.uber.org/mock/gomock"

	"github.com/quay/cvsscore"
	"github.com/quay/cvsscore/test"
)

const (
	v2Vec  = `AV:N/AC:L/Au:N/C:P/I:P/A:P`
	v31Vec = `CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H`
	v4Vec  = `CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:H/SI:H/SA:H`
)

func TestRun(t *testing.T) {
	ctx := test.Logging(t)
	input := strings.Join([]string{
		"# comment",
		v31Vec,
		"",
		"  " + v2Vec + "  ",
		v4Vec,
	}, "\n")
	want := []cvsscore.Request{
		{Version: cvsscore.V31, Vector: v31Vec},
		{Version: cvsscore.V2, Vector: v2Vec},
		{Version: cvsscore.V40, Vector: v4Vec},
	}
	scoreErr := errors.New("bad")

	t.Run("Text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewMockscorer(ctrl)
		s.EXPECT().ScoreBatch(gomock.Any(), want).Return([]cvsscore.Result{
			{Request: want[0], Score: cvsscore.Score{Value: 9.8, Severity: cvsscore.Critical}},
			{Request: want[1], Err: scoreErr},
			{Request: want[2], Score: cvsscore.Score{Value: 10, Severity: cvsscore.Critical}},
		}, nil)

		var out bytes.Buffer
		failed, err := run(ctx, s, strings.NewReader(input), &out, &options{})
		if err != nil {
			t.Fatal(err)
		}
		if got, want := failed, 1; got != want {
			t.Errorf("failed: got: %d, want: %d", got, want)
		}
		wantOut := v31Vec + "\t9.8\tCRITICAL\n" +
			v2Vec + "\terror: bad\n" +
			v4Vec + "\t10.0\tCRITICAL\n"
		if got := out.String(); !cmp.Equal(got, wantOut) {
			t.Error(cmp.Diff(got, wantOut))
		}
	})

	t.Run("JSON", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewMockscorer(ctrl)
		s.EXPECT().ScoreBatch(gomock.Any(), want[:1]).Return([]cvsscore.Result{
			{Request: want[0], Score: cvsscore.Score{Value: 9.8, Severity: cvsscore.Critical}},
		}, nil)

		var out bytes.Buffer
		_, err := run(ctx, s, strings.NewReader(v31Vec), &out, &options{JSON: true})
		if err != nil {
			t.Fatal(err)
		}
		wantOut := `{"version":"3.1","vector":"` + v31Vec + `","score":9.8,"severity":"CRITICAL"}` + "\n"
		if got := out.String(); !cmp.Equal(got, wantOut) {
			t.Error(cmp.Diff(got, wantOut))
		}
	})

	t.Run("ForcedVersion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewMockscorer(ctrl)
		s.EXPECT().
			ScoreBatch(gomock.Any(), []cvsscore.Request{{Version: cvsscore.V30, Vector: v31Vec}}).
			Return(nil, nil)

		_, err := run(ctx, s, strings.NewReader(v31Vec), io.Discard, &options{Version: cvsscore.V30})
		if err != nil {
			t.Fatal(err)
		}
	})

	t.Run("Canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewMockscorer(ctrl)
		cerr := &cvsscore.Error{Kind: cvsscore.ErrCanceled, Inner: context.Canceled}
		s.EXPECT().ScoreBatch(gomock.Any(), want).Return([]cvsscore.Result{
			{Request: want[0], Score: cvsscore.Score{Value: 9.8, Severity: cvsscore.Critical}},
			{Request: want[1], Err: cerr},
			{Request: want[2], Err: cerr},
		}, cerr)

		var out bytes.Buffer
		failed, err := run(ctx, s, strings.NewReader(input), &out, &options{})
		if !errors.Is(err, cvsscore.ErrCanceled) {
			t.Errorf("unexpected error: %v", err)
		}
		if failed != 0 {
			t.Errorf("failed: got: %d, want: 0", failed)
		}
		wantOut := v31Vec + "\t9.8\tCRITICAL\n"
		if got := out.String(); !cmp.Equal(got, wantOut) {
			t.Error(cmp.Diff(got, wantOut))
		}
	})

	t.Run("Error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewMockscorer(ctrl)
		s.EXPECT().ScoreBatch(gomock.Any(), gomock.Any()).Return(nil, scoreErr)

		var out bytes.Buffer
		_, err := run(ctx, s, strings.NewReader(v31Vec), &out, &options{})
		if !errors.Is(err, scoreErr) {
			t.Errorf("unexpected error: %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("unexpected output: %q", out.String())
		}
	})
}

func TestFlagSet(t *testing.T) {
	tt := []struct {
		Name  string
		Args  []string
		Err   error
		Usage bool
		Want  options
	}{
		{
			Name: "OK",
			Args: []string{"-json", "-v", "3.0", "-i", "a", "-i", "b", v31Vec},
			Want: options{JSON: true, Version: cvsscore.V30, Inputs: []string{"a", "b"}},
		},
		{Name: "Help", Args: []string{"-h"}, Err: flag.ErrHelp},
		{Name: "UnknownFlag", Args: []string{"-nope"}, Usage: true},
		{Name: "BadVersion", Args: []string{"-v", "5"}, Usage: true},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			var opts options
			fs := flagSet(&opts)
			var stderr bytes.Buffer
			fs.SetOutput(&stderr)
			err := fs.Parse(tc.Args)
			t.Logf("output: %s", stderr.String())
			switch {
			case tc.Err != nil:
				if !errors.Is(err, tc.Err) {
					t.Errorf("got: %v, want: %v", err, tc.Err)
				}
			case tc.Usage:
				if err == nil || errors.Is(err, flag.ErrHelp) {
					t.Errorf("want usage error, got: %v", err)
				}
				if stderr.Len() == 0 {
					t.Error("usage not printed")
				}
			default:
				if err != nil {
					t.Fatal(err)
				}
				if !cmp.Equal(opts, tc.Want) {
					t.Error(cmp.Diff(opts, tc.Want))
				}
				if got, want := fs.Args(), []string{v31Vec}; !cmp.Equal(got, want) {
					t.Error(cmp.Diff(got, want))
				}
			}
		})
	}
}

func TestRunEngine(t *testing.T) {
	ctx := test.Logging(t)
	e, err := cvsscore.New(ctx, &cvsscore.Config{DisableTelemetry: true})
	if err != nil {
		t.Fatal(err)
	}
	in := strings.NewReader(strings.Join([]string{v2Vec, v31Vec, v4Vec}, "\n"))
	var out bytes.Buffer
	failed, err := run(ctx, e, in, &out, &options{})
	if err != nil {
		t.Fatal(err)
	}
	if failed != 0 {
		t.Errorf("%d failed", failed)
	}
	want := v2Vec + "\t7.5\tHIGH\n" +
		v31Vec + "\t9.8\tCRITICAL\n" +
		v4Vec + "\t10.0\tCRITICAL\n"
	if got := out.String(); !cmp.Equal(got, want) {
		t.Error(cmp.Diff(got, want))
	}
}

func TestDecompress(t *testing.T) {
	const content = v31Vec + "\n" + v2Vec + "\n"
	tt := []struct {
		Name     string
		Compress func(io.Writer) (io.WriteCloser, error)
	}{
		{
			Name: "Plain",
			Compress: func(w io.Writer) (io.WriteCloser, error) {
				return nopWriteCloser{w}, nil
			},
		},
		{
			Name: "Gzip",
			Compress: func(w io.Writer) (io.WriteCloser, error) {
				return gzip.NewWriter(w), nil
			},
		},
		{
			Name: "Zstd",
			Compress: func(w io.Writer) (io.WriteCloser, error) {
				return zstd.NewWriter(w)
			},
		},
		{
			Name: "Xz",
			Compress: func(w io.Writer) (io.WriteCloser, error) {
				return xz.NewWriter(w)
			},
		},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := tc.Compress(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := io.WriteString(w, content); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			rd, err := decompress(&buf)
			if err != nil {
				t.Fatal(err)
			}
			defer rd.Close()
			b, err := io.ReadAll(rd)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := string(b), content; got != want {
				t.Error(cmp.Diff(got, want))
			}
		})
	}
	t.Run("Empty", func(t *testing.T) {
		rd, err := decompress(strings.NewReader(""))
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rd)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != 0 {
			t.Errorf("got %q", b)
		}
	})
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestOpenInputs(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "vectors.gz")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	// No trailing newline.
	if _, err := io.WriteString(gz, v4Vec); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := openInputs([]string{v2Vec}, []string{name, name})
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Close(); err != nil {
		t.Error(err)
	}
	want := v2Vec + "\n" + v4Vec + "\n" + v4Vec + "\n"
	if got := string(b); got != want {
		t.Error(cmp.Diff(got, want))
	}

	if _, err := openInputs(nil, []string{filepath.Join(dir, "missing")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	ctx := test.Logging(t)
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tt := []struct {
		Name string
		File string
		Want *cvsscore.Config
		Err  bool
	}{
		{
			Name: "Default",
			Want: &cvsscore.Config{},
		},
		{
			Name: "JSON",
			File: write("c.json", `{"batch_concurrency":4,"disable_telemetry":true}`),
			Want: &cvsscore.Config{BatchConcurrency: 4, DisableTelemetry: true},
		},
		{
			Name: "YAML",
			File: write("c.yaml", "batch_concurrency: 2\n"),
			Want: &cvsscore.Config{BatchConcurrency: 2},
		},
		{
			Name: "UnknownField",
			File: write("bad.json", `{"concurrency":4}`),
			Err:  true,
		},
		{
			Name: "UnknownFieldYAML",
			File: write("bad.yml", "concurrency: 4\n"),
			Err:  true,
		},
		{
			Name: "Negative",
			File: write("neg.json", `{"batch_concurrency":-1}`),
			Err:  true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := loadConfig(ctx, tc.File)
			if (err != nil) != tc.Err {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.Err {
				if !errors.Is(err, cvsscore.ErrInvalid) {
					t.Errorf("want ErrInvalid, got: %v", err)
				}
				return
			}
			if !cmp.Equal(got, tc.Want) {
				t.Error(cmp.Diff(got, tc.Want))
			}
		})
	}
}
