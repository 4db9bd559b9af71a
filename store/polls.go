// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/pollboard/models"
)

type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

const pollColumns = `id, user_id, question, options, created_at, updated_at`

func (s *PollStore) Create(ctx context.Context, p *models.Poll) error {
	options, err := json.Marshal(p.Options)
	if err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO poll (id, user_id, question, options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.UserID, p.Question, string(options), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (s *PollStore) Get(ctx context.Context, id string) (*models.Poll, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM poll WHERE id = $1`, id)

	p, err := scanPoll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}
	return p, nil
}

// ListByUser returns the user's polls, newest first
func (s *PollStore) ListByUser(ctx context.Context, userID string) ([]models.Poll, error) {
	return s.list(ctx, `
		SELECT `+pollColumns+`
		FROM poll
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
}

// ListAll returns every poll across owners, newest first
func (s *PollStore) ListAll(ctx context.Context) ([]models.Poll, error) {
	return s.list(ctx, `
		SELECT `+pollColumns+`
		FROM poll
		ORDER BY created_at DESC, id DESC
	`)
}

// Update rewrites question and options of the poll owned by ownerID.
// Returns the number of rows changed: 0 when id/owner do not match, or when
// a vote exists for an option index the new list no longer has.
func (s *PollStore) Update(ctx context.Context, id, ownerID, question string, options []string, updatedAt time.Time) (int64, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return 0, fmt.Errorf("failed to encode options: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE poll
		SET question = $1, options = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
		  AND NOT EXISTS (
			SELECT 1 FROM vote WHERE vote.poll_id = poll.id AND vote.option_index >= $6
		  )
	`, question, string(encoded), updatedAt, id, ownerID, len(options))
	if err != nil {
		return 0, fmt.Errorf("failed to update poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// Delete removes a poll; its votes go with it via ON DELETE CASCADE
func (s *PollStore) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

func (s *PollStore) list(ctx context.Context, query string, args ...any) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}
	return polls, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPoll(sc scanner) (*models.Poll, error) {
	var p models.Poll
	var options string
	if err := sc.Scan(&p.ID, &p.UserID, &p.Question, &options, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
		return nil, fmt.Errorf("failed to decode options of poll %s: %w", p.ID, err)
	}
	return &p, nil
}
