// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging and Metrics

Wrap handlers with request logging and Prometheus metrics:

	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(middleware.WithMetrics(handler)))

Logging records request start at debug level (method, path, remote) and
completion (status, duration_ms) at info, or error for 5xx responses. Metrics are labelled by the matched route pattern, not the raw
path, so poll IDs do not explode label cardinality.

# Sessions

Resolve bearer tokens to users before routing:

	handler := middleware.WithSession(stores.Sessions, cfg.SessionSecret, mux)

Requests without a valid, unexpired token continue anonymously.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(handler),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization. Credentials are never allowed, since
sessions are bearer tokens rather than cookies.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.PollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
