// Package log holds the Context-scoped logging helpers used across cvsscore.
//
// Attributes are carried on a [context.Context] rather than on a
// [slog.Logger], so that callers can annotate a Context once (with the vector
// being scored, for example) and have every record produced with that Context
// carry the annotation. Use [WrapHandler] on the process' [slog.Handler] to
// have the attributes emitted.
package log

import (
	"context"
	"log/slog"
	"slices"
)

// Ctxkey is a Context key type.
//
// This is unexported so that other packages cannot construct these values.
type ctxkey int

const (
	_ ctxkey = iota

	// AttrsKey is used with [context.Context.Value] to retrieve the extra
	// logging attributes. The value will be a [slog.Value] of kind "Group" if
	// present.
	AttrsKey

	// LevelKey is used with [context.Context.Value] to retrieve a per-Context
	// minimum [slog.Level].
	LevelKey
)

// With returns a context with the arguments stored as [slog.Attr] at
// [AttrsKey]. The arguments are interpreted as by [slog.Logger.Log].
func With(ctx context.Context, args ...any) context.Context {
	return WithAttr(ctx, argsToAttrSlice(args)...)
}

// WithAttr returns a context with the arguments stored at [AttrsKey].
//
// Attributes already on the Context are kept unless a new attribute has the
// same key, in which case the new one replaces it. Empty groups are dropped.
func WithAttr(ctx context.Context, attrs ...slog.Attr) context.Context {
	var prev []slog.Attr
	if v, ok := ctx.Value(AttrsKey).(slog.Value); ok {
		prev = v.Group()
	}
	out := make([]slog.Attr, 0, len(prev)+len(attrs))
	idx := make(map[string]int, len(prev)+len(attrs))
	for _, a := range slices.Concat(prev, attrs) {
		if a.Value.Kind() == slog.KindGroup && len(a.Value.Group()) == 0 {
			continue
		}
		if i, ok := idx[a.Key]; ok {
			out[i] = a
			continue
		}
		idx[a.Key] = len(out)
		out = append(out, a)
	}
	return context.WithValue(ctx, AttrsKey, slog.GroupValue(out...))
}

// WithLevel returns a context with the [slog.Leveler] stored at [LevelKey].
//
// Records at or above this level are emitted even if the wrapped handler
// would not emit them.
func WithLevel(ctx context.Context, l slog.Leveler) context.Context {
	return context.WithValue(ctx, LevelKey, l)
}

// MaxVectorLen is the longest vector string recorded by [WithVector]. Longer
// strings are truncated.
const maxVectorLen = 256

// WithVector returns a context annotated with a "cvss" group holding the
// version and vector string being processed.
func WithVector(ctx context.Context, version, vector string) context.Context {
	if len(vector) > maxVectorLen {
		vector = vector[:maxVectorLen] + "…"
	}
	return WithAttr(ctx, slog.Group("cvss",
		slog.String("version", version),
		slog.String("vector", vector),
	))
}

// The following copied out of the [log/slog] package:

func argsToAttrSlice(args []any) []slog.Attr {
	var (
		attr  slog.Attr
		attrs []slog.Attr
	)
	for len(args) > 0 {
		attr, args = argsToAttr(args)
		attrs = append(attrs, attr)
	}
	return attrs
}

func argsToAttr(args []any) (slog.Attr, []any) {
	const badKey = `!BADKEY`
	switch x := args[0].(type) {
	case string:
		if len(args) == 1 {
			return slog.String(badKey, x), nil
		}
		return slog.Any(x, args[1]), args[2:]

	case slog.Attr:
		return x, args[1:]

	default:
		return slog.Any(badKey, x), args[1:]
	}
}
