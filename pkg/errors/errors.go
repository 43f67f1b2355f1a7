// Package errors implements the structured error taxonomy shared by every
// layer of the API: repositories raise these errors, use cases propagate
// them and the HTTP boundary serializes them into a response and a log line.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"strings"
	"time"
)

// Error is an immutable failure description. Build it with New or one of
// the per-kind constructors; Option values are applied once at construction.
type Error struct {
	kind       Kind
	code       string
	message    string
	statusCode int
	severity   Severity
	expose     bool
	context    map[string]any
	cause      error
	timestamp  time.Time
	stack      []uintptr
}

// New builds an Error of the given kind, starting from the kind defaults.
func New(kind Kind, message string, opts ...Option) *Error {
	d := kind.defaults()
	e := &Error{
		kind:       kind,
		code:       d.code,
		message:    message,
		statusCode: d.statusCode,
		severity:   d.severity,
		expose:     d.expose,
		timestamp:  time.Now().UTC(),
		stack:      callers(3),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Error implements the error interface as "<CODE>: <message>".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

// Unwrap returns the wrapped cause so errors.Is / errors.As can walk past it.
func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind           { return e.kind }
func (e *Error) Name() string         { return e.kind.String() }
func (e *Error) Code() string         { return e.code }
func (e *Error) Message() string      { return e.message }
func (e *Error) StatusCode() int      { return e.statusCode }
func (e *Error) Severity() Severity   { return e.severity }
func (e *Error) Expose() bool         { return e.expose }
func (e *Error) Cause() error         { return e.cause }
func (e *Error) Timestamp() time.Time { return e.timestamp }

// Context returns a copy of the diagnostic context. Mutating the result
// does not affect the error.
func (e *Error) Context() map[string]any {
	if len(e.context) == 0 {
		return nil
	}
	return maps.Clone(e.context)
}

// Stack returns the call stack captured at construction, one frame per line.
func (e *Error) Stack() string {
	if len(e.stack) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(e.stack)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// Is reports whether err carries a Structured Error of the given kind
// anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.kind == kind
}

// KindOf returns the kind of the first Structured Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

func callers(skip int) []uintptr {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	return pcs[:n]
}
