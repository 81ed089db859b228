package infra

import (
	"errors"
	"log/slog"

	"savor-sync/internal/pkg/errs"
)

type ErrorKind string

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// WrapErr logs at warn level; callers decide whether the failure is recoverable.
// The result is marked with the usecase sentinel when one is given.
func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error, mark error) error {
	slogger.Warn("Infra error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	var wrapped error = Error{Kind: kind, msg: msg, err: err}
	if mark != nil {
		wrapped = errs.Mark(wrapped, mark)
	}
	return wrapped
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindTransport      ErrorKind = "TRANSPORT"
	KindUpstreamStatus ErrorKind = "UPSTREAM_STATUS"
	KindMalformed      ErrorKind = "MALFORMED"
	KindStorage        ErrorKind = "STORAGE"
)
