// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest, LoginRequest: email, password
  - PollRequest: question, options (create and update)
  - SubmitVoteRequest: option_index

# Response Types

  - LoginResponse: token, expires_at, user
  - PollListResponse: polls
  - PollResults: poll, results, total_votes, user_vote
  - ErrorResponse: error, message

# Domain Types

  - User: account with a server-side role
  - Session: hashed bearer token with expiry
  - Poll: question with an ordered option list
  - Vote: one option index per user per poll
  - OptionResult: per-option tally and percentage

# Constants

Roles:

	RoleUser  = "user"
	RoleAdmin = "admin"
*/
package models
