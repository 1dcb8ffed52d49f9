// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ineedasolution/auth"
	"github.com/danielhkuo/ineedasolution/cliparse"
	"github.com/danielhkuo/ineedasolution/db"
)

// TestAdminToken is the admin token used by GetTestConfig
const TestAdminToken = "test-admin-token"

// SetupTestDB creates a fresh SQLite database with the full schema.
// The database lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		AdminToken:   TestAdminToken,
	}
}

// CreateTestBrowser inserts a browser row for signature
func CreateTestBrowser(t *testing.T, db *sql.DB, signature string) string {
	t.Helper()

	browserID, _ := auth.GenerateID()
	_, err := db.Exec(`
		INSERT INTO browser (id, signature, created_at)
		VALUES ($1, $2, $3)
	`, browserID, signature, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test browser: %v", err)
	}

	return browserID
}

// CreateTestProblem inserts a problem owned by signature and returns its ID
func CreateTestProblem(t *testing.T, db *sql.DB, signature, description string) string {
	t.Helper()

	problemID, _ := auth.GenerateID()
	_, err := db.Exec(`
		INSERT INTO problem (id, description, browser_signature, created_at)
		VALUES ($1, $2, $3, $4)
	`, problemID, description, signature, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test problem: %v", err)
	}

	return problemID
}

// CreateTestVote inserts a vote by signature on problemID and returns its ID
func CreateTestVote(t *testing.T, db *sql.DB, problemID, signature string) string {
	t.Helper()

	voteID, _ := auth.GenerateID()
	_, err := db.Exec(`
		INSERT INTO vote (id, problem_id, browser_signature, created_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, problemID, signature, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// CountVotes returns the number of ledger rows for (signature, problemID)
func CountVotes(t *testing.T, db *sql.DB, problemID, signature string) int {
	t.Helper()

	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE problem_id = $1 AND browser_signature = $2
	`, problemID, signature).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return n
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
