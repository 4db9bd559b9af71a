// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens, password hashing and caller identity.

# Session Tokens

Session tokens are random 32-byte (256-bit) secrets returned once at login:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded without padding. The database only ever
sees an HMAC-SHA256 of the token keyed by SESSION_SECRET:

	hash := auth.HashToken(token, cfg.SessionSecret)

Clients send the token as "Authorization: Bearer <token>":

	token, err := auth.ParseBearer(r.Header.Get("Authorization"))

# Passwords

Passwords are hashed with bcrypt:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password) // ErrInvalidCredentials on mismatch

# Caller Identity

The session middleware stores the resolved user in the request context;
actions read it back:

	ctx = auth.WithUser(ctx, user)
	caller := auth.UserFromContext(ctx) // nil when anonymous

# ID Generation

Record IDs are random UUIDs:

	id := auth.NewID()
*/
package auth
