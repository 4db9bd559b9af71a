// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/pollboard/models"
)

type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, sess *models.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_session (token_hash, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, sess.TokenHash, sess.UserID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// UserByTokenHash resolves a live session to its user. The role is read
// from app_user on every call so role changes apply immediately.
func (s *SessionStore) UserByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*models.User, error) {
	var u models.User
	var expiresAt time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.email, u.password_hash, u.role, u.created_at, s.expires_at
		FROM user_session s
		JOIN app_user u ON u.id = s.user_id
		WHERE s.token_hash = $1
	`, tokenHash).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if !now.Before(expiresAt) {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM user_session WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
