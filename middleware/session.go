// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// SessionResolver looks up the user behind a hashed session token
type SessionResolver interface {
	UserByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.User, error)
}

// WithSession resolves "Authorization: Bearer <token>" to a user and stores
// it in the request context. Missing, malformed, unknown and expired tokens
// leave the request anonymous; handlers decide whether that is allowed.
func WithSession(sessions SessionResolver, secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := auth.ParseBearer(header)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := sessions.UserByTokenHash(r.Context(), auth.HashToken(token, secret), time.Now().UTC())
		if errors.Is(err, store.ErrNotFound) {
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			slog.Error("failed to resolve session", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
	})
}
