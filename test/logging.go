// Package test holds helpers shared by the cvsscore tests.
package test

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/quay/cvsscore/toolkit/log"
)

var (
	// Setup installs the test log handler exactly once.
	setup = sync.OnceFunc(func() {
		slog.SetDefault(slog.New(log.WrapHandler(router{})))
	})

	// Getwd caches [os.Getwd], since it may be called for every [slog.Record].
	getwd = sync.OnceValue(func() string {
		dir, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		return dir
	})

	// Modname caches the main module name.
	modname = sync.OnceValue(func() string {
		if info, ok := debug.ReadBuildInfo(); ok {
			return info.Main.Path + "/"
		}
		return ""
	})
)

type ctxKey struct{}

var handlerKey ctxKey

// Router implements [slog.Handler] by sending records to the [slog.Handler]
// stored in the Context by [Logging]. Records logged with a Context that
// doesn't have one are dropped.
//
// Attributes and groups added with WithAttrs and WithGroup are replayed onto
// the Context's handler for every record.
type router []func(slog.Handler) slog.Handler

func (r router) lookup(ctx context.Context) slog.Handler {
	h, ok := ctx.Value(handlerKey).(slog.Handler)
	if !ok {
		return nil
	}
	for _, op := range r {
		h = op(h)
	}
	return h
}

// Enabled implements [slog.Handler].
func (r router) Enabled(ctx context.Context, l slog.Level) bool {
	h, ok := ctx.Value(handlerKey).(slog.Handler)
	return ok && h.Enabled(ctx, l)
}

// Handle implements [slog.Handler].
func (r router) Handle(ctx context.Context, rec slog.Record) error {
	h := r.lookup(ctx)
	if h == nil {
		return nil
	}
	return h.Handle(ctx, rec)
}

// WithAttrs implements [slog.Handler].
func (r router) WithAttrs(attrs []slog.Attr) slog.Handler {
	return append(r[:len(r):len(r)], func(h slog.Handler) slog.Handler {
		return h.WithAttrs(attrs)
	})
}

// WithGroup implements [slog.Handler].
func (r router) WithGroup(name string) slog.Handler {
	return append(r[:len(r):len(r)], func(h slog.Handler) slog.Handler {
		return h.WithGroup(name)
	})
}

// Logging returns a [context.Context] that makes the default [slog.Logger]
// write to the output of "t".
//
// If "parent" is provided, the first element is used as the parent Context.
// Otherwise [context.Background] is used, not the test's Context.
func Logging(t testing.TB, parent ...context.Context) context.Context {
	setup()
	ctx := context.Background()
	if len(parent) > 0 {
		ctx = parent[0]
	}
	start := time.Now()
	h := slog.NewTextHandler(t.Output(), &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(g []string, a slog.Attr) slog.Attr {
			if g != nil {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.String(slog.TimeKey, "+"+time.Since(start).String())
			case slog.SourceKey:
				src, ok := a.Value.Any().(*slog.Source)
				if !ok {
					return a
				}
				if src.Function != "" {
					return slog.String(slog.SourceKey, strings.TrimPrefix(src.Function, modname()))
				}
				f := src.File
				if rel, err := filepath.Rel(getwd(), f); err == nil && rel != "" {
					f = rel
				}
				return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", f, src.Line))
			}
			return a
		},
	})
	return context.WithValue(ctx, handlerKey, h)
}
