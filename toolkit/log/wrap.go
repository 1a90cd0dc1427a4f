package log

import (
	"context"
	"log/slog"
)

// WrapHandler wraps the provided handler with an interceptor that adds the
// [slog.Attr] values stored at [AttrsKey] to every record and honors the
// level stored at [LevelKey].
func WrapHandler(next slog.Handler) slog.Handler {
	return handler{next: next}
}

var _ slog.Handler = handler{}

type handler struct {
	next slog.Handler
}

// Enabled implements [slog.Handler].
func (h handler) Enabled(ctx context.Context, l slog.Level) bool {
	if lv, ok := ctx.Value(LevelKey).(slog.Leveler); ok && l >= lv.Level() {
		return true
	}
	return h.next.Enabled(ctx, l)
}

// Handle implements [slog.Handler].
func (h handler) Handle(ctx context.Context, r slog.Record) error {
	if v, ok := ctx.Value(AttrsKey).(slog.Value); ok {
		r.AddAttrs(v.Group()...)
	}
	return h.next.Handle(ctx, r)
}

// WithAttrs implements [slog.Handler].
//
// The returned Handler still adds Context attributes.
func (h handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return handler{next: h.next.WithAttrs(attrs)}
}

// WithGroup implements [slog.Handler].
//
// The returned Handler still adds Context attributes.
func (h handler) WithGroup(name string) slog.Handler {
	return handler{next: h.next.WithGroup(name)}
}
