// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open supports sqlite (modernc.org/sqlite, pure Go) and PostgreSQL (lib/pq):

	conn, err := db.Open(ctx, db.TypeSQLite, "pollboard.db")
	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")

sqlite paths get foreign keys and a busy timeout switched on, and the pool is
limited to one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on both backends.

# Tables

  - app_user: Accounts and their role (user or admin)
  - user_session: HMAC of each live session token
  - poll: Question and ordered options (JSON array)
  - vote: One row per user per poll

# Relationships

	app_user 1──* user_session
	app_user 1──* poll
	poll 1──* vote
	app_user 1──* vote

vote.poll_id and user_session.user_id use ON DELETE CASCADE.
UNIQUE(poll_id, user_id) on vote enforces one vote per user per poll.
*/
package db
