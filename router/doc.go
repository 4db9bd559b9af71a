// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the pollboard API.

# Route Registration

NewRouter builds the services and handlers and returns the full handler
chain (CORS, then session resolution, then the mux):

	handler := router.NewRouter(db, cfg, listings)

# Endpoints

Operational:

	GET /health
	GET /metrics

Accounts:

	POST /auth/signup - Create account
	POST /auth/login  - Start session, returns bearer token
	POST /auth/logout - End session
	GET  /auth/me     - Current user

Polls (Authorization: Bearer <token> where a caller is needed):

	POST   /polls              - Create poll
	GET    /polls/mine         - Caller's polls, newest first
	GET    /polls/{id}         - Poll
	PUT    /polls/{id}         - Edit (owner or admin)
	DELETE /polls/{id}         - Delete (owner or admin)
	POST   /polls/{id}/votes   - Vote once, returns results
	GET    /polls/{id}/results - Counts and percentages

Admin (role admin):

	GET    /admin/polls      - All polls
	DELETE /admin/polls/{id} - Delete any poll

Every routed handler is wrapped in middleware.WithLogging and
middleware.WithMetrics.
*/
package router
