package infra

import (
	"errors"
	"log/slog"

	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/shared"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure and returns an error carrying both the kind and the
// matching use-case sentinel, so callers can test either.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		slogger.Debug("Repository miss: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return errs.Mark(RepositoryError{Kind: kind, msg: msg, err: err}, sentinelFor(kind))
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func sentinelFor(kind RepositoryErrorKind) error {
	if kind == KindNotFound {
		return shared.ErrNotFound
	}
	return shared.ErrStorage
}

// Infrastructure-specific error kinds
const (
	KindNotFound       RepositoryErrorKind = "NOT_FOUND"
	KindBackendFailure RepositoryErrorKind = "BACKEND_FAILURE"
	KindCorruptData    RepositoryErrorKind = "CORRUPT_DATA"
	KindDuplicateKey   RepositoryErrorKind = "DUPLICATE_KEY"
)
