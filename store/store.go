// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Stores bundles the repositories sharing one connection pool
type Stores struct {
	Users    *UserStore
	Sessions *SessionStore
	Polls    *PollStore
	Votes    *VoteStore
}

func New(db *sql.DB) *Stores {
	return &Stores{
		Users:    NewUserStore(db),
		Sessions: NewSessionStore(db),
		Polls:    NewPollStore(db),
		Votes:    NewVoteStore(db),
	}
}
