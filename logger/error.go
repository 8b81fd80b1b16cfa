package logger

import (
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a logger set up by this package,
// the attributes are extracted and included in the log output.
//
// Example:
//
//	return AnnotateError(err, "algorithm", alg.String(), "index", i)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &annotatedError{
		err:   err,
		attrs: errAttrs,
	}
}

// annotatedError wraps an error with structured logging attributes.
// It supports unwrapping, so errors.Is and errors.As see through it.
type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (s *annotatedError) Error() string {
	return s.err.Error()
}

func (s *annotatedError) Unwrap() error {
	return s.err
}

var _ error = (*annotatedError)(nil)
