// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pollboard/cache"
	"github.com/danielhkuo/pollboard/cliparse"
	"github.com/danielhkuo/pollboard/handlers"
	"github.com/danielhkuo/pollboard/metrics"
	"github.com/danielhkuo/pollboard/middleware"
	"github.com/danielhkuo/pollboard/polls"
	"github.com/danielhkuo/pollboard/store"
)

func wrap(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.WithMetrics(h))
}

// NewRouter builds the route table. Every request passes through CORS and
// session resolution before reaching the mux.
func NewRouter(db *sql.DB, cfg cliparse.Config, listings cache.ListingCache) http.Handler {
	mux := http.NewServeMux()

	stores := store.New(db)
	svc := polls.NewService(stores, listings)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(stores, cfg)
	pollHandler := handlers.NewPollHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	// Accounts
	mux.HandleFunc("POST /auth/signup", wrap(authHandler.Signup))
	mux.HandleFunc("POST /auth/login", wrap(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", wrap(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", wrap(authHandler.Me))

	// Poll management
	mux.HandleFunc("POST /polls", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/mine", wrap(pollHandler.GetMyPolls))
	mux.HandleFunc("GET /polls/{id}", wrap(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", wrap(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", wrap(pollHandler.DeletePoll))

	// Voting and results
	mux.HandleFunc("POST /polls/{id}/votes", wrap(votingHandler.SubmitVote))
	mux.HandleFunc("GET /polls/{id}/results", wrap(resultsHandler.GetResults))

	// Admin (role checked against app_user)
	mux.HandleFunc("GET /admin/polls", wrap(adminHandler.ListPolls))
	mux.HandleFunc("DELETE /admin/polls/{id}", wrap(adminHandler.DeletePoll))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollboard API v1"))
	})

	return middleware.CORS(middleware.WithSession(stores.Sessions, cfg.SessionSecret, mux))
}
