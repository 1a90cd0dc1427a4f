// Package vector holds the pieces shared by the version-specific vector
// parsers: the tokenizer, the per-metric decode tables, and the resolved
// ("effective") metric mapping handed to the calculators.
package vector

import (
	"strings"
)

// Header is the metric code used by the optional version token that leads
// v3.x and v4.0 vectors, e.g. "CVSS:3.1".
const Header = `CVSS`

// Effective maps a metric's short code (e.g. "AV") to its resolved short value
// (e.g. "N") after any Modified metrics and defaults have been applied.
//
// An Effective is built fresh for every calculation and is never shared.
type Effective map[string]string

// Decoder sets the field of the record "r" that it's responsible for from the
// raw value "v".
//
// Decoders must not fail: an unrecognized value leaves the "Not Defined"
// sentinel in place.
type Decoder[T any] func(r *T, v string)

// Table is a decode table: metric code to the Decoder for that metric.
type Table[T any] map[string]Decoder[T]

// Parse tokenizes the slash-separated vector "s" and applies the matching
// Decoder from "t" to every "CODE:VALUE" token.
//
// A leading version token is skipped, as are tokens without a colon and tokens
// with a code not present in "t". When a metric appears more than once, the
// last occurrence wins.
func Parse[T any](t Table[T], s string) (r T) {
	s = strings.TrimSpace(s)
	for tok := range strings.SplitSeq(s, "/") {
		code, val, ok := strings.Cut(tok, ":")
		if !ok || code == Header {
			continue
		}
		dec, ok := t[code]
		if !ok {
			continue
		}
		dec(&r, val)
	}
	return r
}

// Codes lists the abbreviated values of a metric enumeration, indexed by the
// enumeration value. Index 0 is always the "Not Defined" sentinel's code.
type Codes []string

// Index reports the enumeration value for the abbreviation "v", or 0 if "v" is
// not one of the codes.
func (c Codes) Index(v string) int {
	for i, code := range c {
		if code == v {
			return i
		}
	}
	return 0
}

// Name reports the abbreviation for the enumeration value "i".
func (c Codes) Name(i int) string {
	if i < 0 || i >= len(c) {
		return c[0]
	}
	return c[i]
}

// Field returns a Decoder that stores the decoded value of a metric in the
// field selected by "sel".
func Field[T any, E ~uint8](c Codes, sel func(*T) *E) Decoder[T] {
	return func(r *T, v string) {
		*sel(r) = E(c.Index(v))
	}
}

// Resolve returns the first defined value of "vs", falling back to "def".
//
// A value is "defined" if it's non-empty and not the "X" (Not Defined) code.
// This is the overlay rule for Modified metrics: Modified value, then Base
// value, then the metric's default.
func Resolve(def string, vs ...string) string {
	for _, v := range vs {
		if v != "" && v != "X" {
			return v
		}
	}
	return def
}
