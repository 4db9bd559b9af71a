// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

var (
	ErrAuth         = errors.New("authentication required")
	ErrPermission   = errors.New("permission denied")
	ErrValidation   = errors.New("invalid input")
	ErrNotFound     = errors.New("poll not found")
	ErrAlreadyVoted = errors.New("you have already voted on this poll")
)

// ValidationError carries a user-facing message and matches ErrValidation
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// BackendError wraps a storage failure. Op names the failed operation and is
// shown to clients; Err is only logged.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *BackendError) Unwrap() error { return e.Err }

func backend(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
