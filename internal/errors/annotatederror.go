// Package errors wraps the standard library errors with structured logging
// annotations. Wrapped errors remember the callsite so log lines point at the
// code that added the context instead of this package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

type annotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// NewSentinel creates an error meant for package-level sentinel values. It
// carries no callsite because the declaration site is not interesting.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg}
}

// Wrap annotates err with a message and optional slog attributes, recording
// the caller's file and line for log output.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		err:    err,
		attrs:  attrs,
		source: callerSource(2),
	}
}

// Unwrap calls errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is calls errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As calls errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join calls errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// SlogError converts an error into a grouped slog attribute with the message,
// the closest annotated callsite, and all annotations found in the chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}
	var (
		attrs  []slog.Attr
		source string
	)
	collectAnnotations(err, &attrs, &source)
	group := []any{slog.String("message", err.Error())}
	if source != "" {
		group = append(group, slog.String("source", source))
	}
	if len(attrs) > 0 {
		annotations := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			annotations = append(annotations, attr)
		}
		group = append(group, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", group...)
}

// collectAnnotations walks the error tree depth-first gathering annotations.
// The outermost annotated source wins since it is closest to the caller.
func collectAnnotations(err error, attrs *[]slog.Attr, source *string) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok { //nolint:errorlint // direct inspection on purpose.
		*attrs = append(*attrs, ae.attrs...)
		if *source == "" && ae.source != "" {
			*source = ae.source
		}
	}
	switch unwrapped := err.(type) { //nolint:errorlint // walking the tree manually.
	case interface{ Unwrap() error }:
		collectAnnotations(unwrapped.Unwrap(), attrs, source)
	case interface{ Unwrap() []error }:
		for _, joined := range unwrapped.Unwrap() {
			collectAnnotations(joined, attrs, source)
		}
	}
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the panicking line.
func DecoratePanic(recovered any) error {
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		source: panicSource(),
	}
}

func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// panicSource walks the stack past the runtime panic machinery to find the
// frame that panicked.
func panicSource() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	seenPanic := false
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			return ""
		}
	}
}
