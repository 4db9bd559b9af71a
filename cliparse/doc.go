// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite or postgres)
	--session-secret Session token HMAC key
	--session-ttl    Session lifetime
	--admin-emails   Comma separated admin emails
	--redis-url      Redis URL for the listing cache
	--cache-ttl      Listing cache TTL
	--log-level      debug, info, warn, error
	--log-format     text or json

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret
	SESSION_TTL    → --session-ttl
	ADMIN_EMAILS   → --admin-emails
	REDIS_URL      → --redis-url
	CACHE_TTL      → --cache-ttl
	LOG_LEVEL      → --log-level
	LOG_FORMAT     → --log-format

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - SESSION_SECRET is missing
  - PORT, SESSION_TTL or CACHE_TTL do not parse
  - DATABASE_TYPE is neither sqlite nor postgres
*/
package cliparse
