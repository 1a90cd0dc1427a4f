package cvsscore

import (
	"errors"
	"strings"
)

// Error is the cvsscore error domain type.
//
// Errors returned by [Engine] methods can be inspected as ([errors.As]) an
// *Error. Callers should prefer [errors.Is] against an [ErrorKind] over
// inspecting the Message.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrInternal, ErrInvalid, ErrCanceled:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	b.WriteString(e.Message)
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of errors to be checked against.
//
// If an error is unsure which kind to use, ErrInternal should be used.
type ErrorKind string

// Defined error kinds.
var (
	ErrInternal = ErrorKind("internal") // non-specific internal error
	ErrInvalid  = ErrorKind("invalid")  // invalid request, e.g. an unknown version
	ErrCanceled = ErrorKind("canceled") // the Context was canceled before the work finished
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
