package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so callers (and the HTTP layer) can react
// without string-matching messages.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindConflict        Kind = "conflict"
	KindInvalidState    Kind = "invalid_state"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != "" {
		return string(e.Kind)
	}
	return "application error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Errorf(format, args...))
}

func InvalidArgument(format string, args ...any) *Error {
	return New(KindInvalidArgument, fmt.Errorf(format, args...))
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Errorf(format, args...))
}

func InvalidState(format string, args ...any) *Error {
	return New(KindInvalidState, fmt.Errorf(format, args...))
}

// KindOf returns the kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsNotFound(err error) bool        { return KindOf(err) == KindNotFound }
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }
func IsConflict(err error) bool        { return KindOf(err) == KindConflict }
func IsInvalidState(err error) bool    { return KindOf(err) == KindInvalidState }

// HTTPStatus maps an error to the status the HTTP adapter should return.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindInvalidState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
