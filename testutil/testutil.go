// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/cliparse"
	"github.com/danielhkuo/pollboard/db"
	"github.com/danielhkuo/pollboard/models"
)

// TestSessionSecret signs session tokens in tests
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh sqlite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          cliparse.DefaultPort,
		DatabaseURL:   "file:test.db",
		DatabaseType:  db.TypeSQLite,
		SessionSecret: TestSessionSecret,
		SessionTTL:    time.Hour,
		AdminEmails:   []string{"admin@example.com"},
		CacheTTL:      time.Minute,
	}
}

// CreateTestUser inserts a user with password "password123"
func CreateTestUser(t *testing.T, conn *sql.DB, email, role string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	u := &models.User{
		ID:           auth.NewID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = conn.Exec(`
		INSERT INTO app_user (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// CreateTestSession opens a session for the user and returns the bearer token
func CreateTestSession(t *testing.T, conn *sql.DB, u *models.User) string {
	t.Helper()

	token, _ := auth.GenerateSessionToken()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO user_session (token_hash, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, auth.HashToken(token, TestSessionSecret), u.ID, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestPoll inserts a poll and returns its ID. createdAt orders listings.
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID, question string, options []string, createdAt time.Time) string {
	t.Helper()

	encoded, _ := json.Marshal(options)
	pollID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO poll (id, user_id, question, options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pollID, ownerID, question, string(encoded), createdAt.UTC(), createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// CastTestVote inserts a vote directly
func CastTestVote(t *testing.T, conn *sql.DB, pollID, userID string, optionIndex int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO vote (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, auth.NewID(), pollID, userID, optionIndex, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// CountRows runs a COUNT(*) query
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// WithCaller returns ctx carrying u as the authenticated user
func WithCaller(ctx context.Context, u *models.User) context.Context {
	return auth.WithUser(ctx, u)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader builds the Authorization header map for MakeRequest
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
