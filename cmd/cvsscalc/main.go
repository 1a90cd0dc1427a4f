// Cvsscalc scores CVSS vectors.
//
// Vectors are read from the arguments, or one per line from the files named
// with "-i" (which may be gzip, zstd, or xz compressed), or from stdin if
// neither is provided. Each vector's version is detected from its prefix
// unless "-v" is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quay/cvsscore"
	"github.com/quay/cvsscore/toolkit/log"
)

type options struct {
	Config  string
	Inputs  []string
	Version cvsscore.Version
	JSON    bool
	Debug   bool
	OTLP    string
	Prom    bool
}

func main() {
	var exit int
	defer func() {
		if exit != 0 {
			os.Exit(exit)
		}
	}()
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer done()

	var opts options
	fs := flagSet(&opts)
	// The FlagSet has already reported the error and usage.
	switch err := fs.Parse(os.Args[1:]); {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		exit = 99
		return
	}

	lv := slog.LevelInfo
	if opts.Debug {
		lv = slog.LevelDebug
	}
	shutdown, err := setupTelemetry(ctx, opts.OTLP, lv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(99)
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
		}
		if opts.Prom {
			if err := dumpMetrics(os.Stderr); err != nil {
				fmt.Fprintf(os.Stderr, "metrics: %v\n", err)
			}
		}
	}()
	ctx = log.With(ctx, "component", "cvsscalc")

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		slog.ErrorContext(ctx, "unable to load configuration", "reason", err)
		exit = 99
		return
	}
	e, err := cvsscore.New(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "unable to create engine", "reason", err)
		exit = 99
		return
	}

	in, err := openInputs(fs.Args(), opts.Inputs)
	if err != nil {
		slog.ErrorContext(ctx, "unable to open input", "reason", err)
		exit = 1
		return
	}
	defer in.Close()

	failed, err := run(ctx, e, in, os.Stdout, &opts)
	switch {
	case errors.Is(err, cvsscore.ErrCanceled):
		slog.InfoContext(ctx, "interrupted")
		exit = 1
	case err != nil:
		slog.ErrorContext(ctx, "scoring failed", "reason", err)
		exit = 1
	case failed != 0:
		exit = 2
	}
}

// FlagSet returns the command's flags, filling in "opts" as they are parsed.
//
// Parse errors are returned rather than exiting, so usage errors get their own
// exit code.
func flagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("cvsscalc", flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s: [flags] [vector...]\n", os.Args[0])
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Without vector arguments or -i, vectors are read from stdin, one per line.")
	}
	fs.StringVar(&opts.Config, "c", "", "configuration file (JSON, or YAML with a .yaml or .yml extension)")
	fs.Func("i", "read vectors from `file` (may be repeated)", func(s string) error {
		opts.Inputs = append(opts.Inputs, s)
		return nil
	})
	fs.Func("v", "score every vector as `version` instead of detecting it", func(s string) (err error) {
		opts.Version, err = cvsscore.ParseVersion(s)
		return err
	})
	fs.BoolVar(&opts.JSON, "json", false, "write results as JSON lines")
	fs.BoolVar(&opts.Debug, "D", false, "debug logging")
	fs.StringVar(&opts.OTLP, "otlp", "", "export telemetry with OTLP over `protocol` (\"http\" or \"grpc\")")
	fs.BoolVar(&opts.Prom, "prom", false, "write Prometheus metrics to stderr on exit")
	return fs
}
