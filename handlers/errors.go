// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/polls"
)

// statusFor maps an action error onto an HTTP status and a client message
func statusFor(err error) (int, string) {
	var verr *polls.ValidationError
	var berr *polls.BackendError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, polls.ErrAuth):
		return http.StatusUnauthorized, "Authentication required"
	case errors.Is(err, polls.ErrPermission):
		return http.StatusForbidden, "You do not have permission to do that"
	case errors.Is(err, polls.ErrNotFound):
		return http.StatusNotFound, "Poll not found"
	case errors.Is(err, polls.ErrAlreadyVoted):
		return http.StatusConflict, "You have already voted on this poll."
	case errors.As(err, &berr):
		// the operation name is safe to show; driver text stays in the log
		return http.StatusInternalServerError, "Database error: failed to " + berr.Op
	default:
		return http.StatusInternalServerError, "Database error"
	}
}

// writeError logs backend failures and writes the mapped error response
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	middleware.ErrorResponse(w, status, msg)
}
