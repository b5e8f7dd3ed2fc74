package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrExpired         = errors.New("expired")
	ErrConflict        = errors.New("conflict")
	ErrAuth            = errors.New("session expired")
	ErrNetwork         = errors.New("backend unreachable")
	ErrBackend         = errors.New("backend failure")
	ErrBadResponse     = errors.New("bad backend response")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// MsgCodeNotFound is shown for every failed lookup, so callers can't tell used codes from unknown ones.
const MsgCodeNotFound = "code not found, already used or incorrect"

// BackendError keeps the backend's message verbatim and unwraps to one of the sentinel errors above.
type BackendError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// UserMessage returns a message safe to show to the station attendant.
func UserMessage(err error) string {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" && !errors.Is(be.Kind, ErrNotFound) {
		return be.Message
	}

	return ""
}
