// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pollboard API.

# Handler Types

  - AuthHandler: Signup, login, logout and the current user
  - PollHandler: Poll create, read, update, delete
  - VotingHandler: Vote submission
  - ResultsHandler: Result view
  - AdminHandler: Listing and deleting any poll

Poll handlers are thin wrappers over polls.Service; the caller is whatever
middleware.WithSession put in the request context:

	svc := polls.NewService(store.New(db), listings)
	pollHandler := handlers.NewPollHandler(svc)

# Errors

Action errors map onto statuses in one place (errors.go):

	polls.ErrValidation   → 400 with the validation message
	polls.ErrAuth         → 401
	polls.ErrPermission   → 403
	polls.ErrNotFound     → 404
	polls.ErrAlreadyVoted → 409
	anything else         → 500, logged

# Voting

A successful vote responds 201 with the refreshed result view, so a client
can redraw without a second request. A repeat vote is 409 and the stored
vote is unchanged.
*/
package handlers
