package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the whole service. Storage failures travel as plain
// wrapped errors; everything a handler should turn into a 4xx response
// is tagged with one of these sentinels through StatusError.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrCreateFailed = errors.New("create failed")
)

// StatusError carries a user-facing message together with its taxonomy
// sentinel, so middleware can pick the status code with errors.Is while
// the message survives verbatim.
type StatusError struct {
	Kind    error
	Message string
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) Unwrap() error { return e.Kind }

func ValidationErr(msg string) error {
	return &StatusError{Kind: ErrValidation, Message: msg}
}

func NotFoundErr(msg string) error {
	return &StatusError{Kind: ErrNotFound, Message: msg}
}

func CreateFailedErr(msg string) error {
	return &StatusError{Kind: ErrCreateFailed, Message: msg}
}

func NotFoundErrf(format string, args ...any) error {
	return &StatusError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}
