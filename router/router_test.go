// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ineedasolution/metrics"
	"github.com/danielhkuo/ineedasolution/models"
	"github.com/danielhkuo/ineedasolution/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewRouter(db, testutil.GetTestConfig(), metrics.New())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHealthEndpoint_DatabaseDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig(), metrics.New())
	db.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "ineedasolution API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// Routes respond (handler is invoked); 400/401/404 are valid handler answers
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"POST", "/browsers"},
		{"GET", "/browsers/some-signature"},
		{"GET", "/problems"},
		{"POST", "/problems"},
		{"GET", "/votes"},
		{"POST", "/votes"},
		{"DELETE", "/votes"},
		{"GET", "/board"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"DELETE problems is not defined", "DELETE", "/problems", http.StatusMethodNotAllowed},
		{"PUT votes is not defined", "PUT", "/votes", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/solutions", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestClearVotesRequiresAdminToken(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("DELETE", "/votes", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/votes", nil, map[string]string{
		"X-Admin-Token": testutil.TestAdminToken,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestClearVotesDisabledWithoutToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.AdminToken = ""
	mux := NewRouter(db, cfg, metrics.New())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("DELETE", "/votes", nil, map[string]string{
		"X-Admin-Token": "anything",
	}))
	testutil.AssertStatus(t, w, http.StatusForbidden)
}

func TestCORSPreflight(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/votes", nil)
	req.Header.Set("Origin", "https://ineedasolution.online")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://ineedasolution.online" {
		t.Errorf("Expected origin to be reflected, got %q", got)
	}
}

// TestEndToEndScenario walks the visitor flow through the full router:
// register, submit, list, vote, list votes, vote again, look at the board
func TestEndToEndScenario(t *testing.T) {
	mux := newTestRouter(t)

	do := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// Step 1: register fingerprint "abc"
	w := do(testutil.MakeRequest("POST", "/browsers", models.RegisterBrowserRequest{Signature: "abc"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 2: submit a problem
	w = do(testutil.MakeRequest("POST", "/problems", models.AddProblemRequest{
		Description:      "need a better search engine",
		OwnerFingerprint: "abc",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 3: list the catalog
	w = do(httptest.NewRequest("GET", "/problems", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var problems []models.Problem
	testutil.AssertJSON(t, w, &problems)
	if len(problems) != 1 {
		t.Fatalf("Expected 1 problem, got %d", len(problems))
	}
	if problems[0].Description != "need a better search engine" {
		t.Errorf("Unexpected description %q", problems[0].Description)
	}
	problemID := problems[0].ID

	// Step 4: vote as "abc"
	w = do(testutil.MakeRequest("POST", "/votes", models.AddVoteRequest{
		ProblemID:        problemID,
		VoterFingerprint: "abc",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Step 5: list the ledger
	w = do(httptest.NewRequest("GET", "/votes", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var votes []models.Vote
	testutil.AssertJSON(t, w, &votes)
	if len(votes) != 1 {
		t.Fatalf("Expected 1 vote, got %d", len(votes))
	}
	if votes[0].VoterFingerprint != "abc" || votes[0].ProblemID != problemID {
		t.Errorf("Vote does not tie abc to %s: %+v", problemID, votes[0])
	}

	// Step 6: vote again, rejected
	w = do(testutil.MakeRequest("POST", "/votes", models.AddVoteRequest{
		ProblemID:        problemID,
		VoterFingerprint: "abc",
	}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Message != "You have voted on this problem before" {
		t.Errorf("Unexpected duplicate vote message %q", errResp.Message)
	}

	// Step 7: the board reflects one vote by abc
	w = do(httptest.NewRequest("GET", "/board?fingerprint=abc&q=Search", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var boardResp models.BoardResponse
	testutil.AssertJSON(t, w, &boardResp)
	if len(boardResp.Entries) != 1 {
		t.Fatalf("Expected 1 board entry, got %d", len(boardResp.Entries))
	}
	if boardResp.Entries[0].Votes != 1 || !boardResp.Entries[0].Voted {
		t.Errorf("Unexpected board entry %+v", boardResp.Entries[0])
	}

	// Metrics saw the activity
	w = do(httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	for _, want := range []string{
		"ineedasolution_browsers_registered_total 1",
		"ineedasolution_problems_created_total 1",
		"ineedasolution_votes_cast_total 1",
		"ineedasolution_duplicate_votes_total 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected metrics to contain %q", want)
		}
	}
}
