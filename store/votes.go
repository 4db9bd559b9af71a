// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/pollboard/models"
)

type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Insert records a vote. The UNIQUE (poll_id, user_id) constraint makes
// this the only uniqueness check: a conflicting row yields ErrDuplicate.
func (s *VoteStore) Insert(ctx context.Context, v *models.Vote) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (poll_id, user_id) DO NOTHING
	`, v.ID, v.PollID, v.UserID, v.OptionIndex, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrDuplicate
	}
	return nil
}

// CountByOption returns option_index -> number of votes for the poll
func (s *VoteStore) CountByOption(ctx context.Context, pollID string) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT option_index, COUNT(*)
		FROM vote
		WHERE poll_id = $1
		GROUP BY option_index
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var idx, n int
		if err := rows.Scan(&idx, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[idx] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}
	return counts, nil
}

// UserVote returns the option the user picked, or nil if they have not voted
func (s *VoteStore) UserVote(ctx context.Context, pollID, userID string) (*int, error) {
	var idx int
	err := s.db.QueryRowContext(ctx, `
		SELECT option_index FROM vote WHERE poll_id = $1 AND user_id = $2
	`, pollID, userID).Scan(&idx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user vote: %w", err)
	}
	return &idx, nil
}

// MaxOptionIndex returns the highest option index voted for on the poll,
// or -1 when it has no votes
func (s *VoteStore) MaxOptionIndex(ctx context.Context, pollID string) (int, error) {
	var idx int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(option_index), -1) FROM vote WHERE poll_id = $1
	`, pollID).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("failed to query highest voted option: %w", err)
	}
	return idx, nil
}
