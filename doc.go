// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pollboard API server.

pollboard is a small polling service: signed-in users create polls with two
or more options, every user may vote once per poll, and results are reported
as per-option counts and rounded percentages. Admins can list and delete any
poll.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first when present.

	DATABASE_URL=pollboard.db SESSION_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --session-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string
  - SESSION_SECRET (--session-secret): HMAC key for stored session tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_TTL (--session-ttl): Session lifetime (default: 720h)
  - ADMIN_EMAILS (--admin-emails): Emails that sign up with the admin role
  - REDIS_URL (--redis-url): Redis for the poll listing cache (default: in-process)
  - CACHE_TTL (--cache-ttl): Listing cache lifetime (default: 1m)
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - handlers: HTTP request handlers (accounts, polls, voting, results, admin)
  - polls: Poll, vote and admin actions with typed errors
  - store: SQL repositories
  - cache: Poll listing cache (redis or memory)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, sessions, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response and domain types
  - auth: Session tokens, passwords, caller context
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
