// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ineedasolution/metrics"
	"github.com/danielhkuo/ineedasolution/models"
	"github.com/danielhkuo/ineedasolution/store"
	"github.com/danielhkuo/ineedasolution/testutil"
)

func TestBrowserRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewBrowserHandler(store.New(db), metrics.New())

	// Pre-create existing browser for "existing browser" test case
	existingID := testutil.CreateTestBrowser(t, db, "existing-signature")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.RegisterBrowserResponse)
	}{
		{
			name:           "new browser registration",
			requestBody:    models.RegisterBrowserRequest{Signature: "new-signature"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.RegisterBrowserResponse) {
				if resp.Identity.ID == "" {
					t.Error("Expected non-empty identity id")
				}
				if resp.WasExisting {
					t.Error("Expected was_existing to be false for new browser")
				}

				// Verify browser was created in database
				var signature string
				err := db.QueryRow("SELECT signature FROM browser WHERE id = $1", resp.Identity.ID).Scan(&signature)
				if err != nil {
					t.Fatalf("Failed to query browser: %v", err)
				}
				if signature != "new-signature" {
					t.Errorf("Expected signature 'new-signature', got '%s'", signature)
				}
			},
		},
		{
			name:           "existing browser registration",
			requestBody:    models.RegisterBrowserRequest{Signature: "existing-signature"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.RegisterBrowserResponse) {
				if resp.Identity.ID != existingID {
					t.Errorf("Expected existing id %s, got %s", existingID, resp.Identity.ID)
				}
				if !resp.WasExisting {
					t.Error("Expected was_existing to be true for existing browser")
				}
			},
		},
		{
			name:           "missing signature",
			requestBody:    models.RegisterBrowserRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "blank signature",
			requestBody:    models.RegisterBrowserRequest{Signature: "   "},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/browsers", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.RegisterBrowserResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestBrowserRegister_Twice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewBrowserHandler(store.New(db), metrics.New())

	var first, second models.RegisterBrowserResponse

	w := httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/browsers", models.RegisterBrowserRequest{Signature: "abc"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	testutil.AssertJSON(t, w, &first)

	w = httptest.NewRecorder()
	handler.Register(w, testutil.MakeRequest("POST", "/browsers", models.RegisterBrowserRequest{Signature: "abc"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &second)

	if first.Identity.ID != second.Identity.ID {
		t.Errorf("Expected same identity, got %s and %s", first.Identity.ID, second.Identity.ID)
	}
	if first.WasExisting || !second.WasExisting {
		t.Errorf("Expected was_existing false then true, got %v then %v", first.WasExisting, second.WasExisting)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM browser WHERE signature = 'abc'").Scan(&count); err != nil {
		t.Fatalf("Failed to count browsers: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 browser row, got %d", count)
	}
}

func TestBrowserGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewBrowserHandler(store.New(db), metrics.New())

	browserID := testutil.CreateTestBrowser(t, db, "get-me-signature")

	tests := []struct {
		name           string
		signature      string
		expectedStatus int
	}{
		{"registered browser", "get-me-signature", http.StatusOK},
		{"unknown browser", "nonexistent-signature", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/browsers/"+tt.signature, nil)
			req.SetPathValue("signature", tt.signature)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.Browser
				testutil.AssertJSON(t, w, &resp)
				if resp.ID != browserID {
					t.Errorf("Expected id %s, got %s", browserID, resp.ID)
				}
			}
		})
	}
}
