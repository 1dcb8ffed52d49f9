// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ineedasolution/metrics"
	"github.com/danielhkuo/ineedasolution/middleware"
	"github.com/danielhkuo/ineedasolution/models"
)

type BrowserHandler struct {
	store   Store
	metrics *metrics.Metrics
}

func NewBrowserHandler(s Store, m *metrics.Metrics) *BrowserHandler {
	return &BrowserHandler{store: s, metrics: m}
}

// Register handles POST /browsers
// Registers a fingerprint and returns its identity (or the existing one)
func (h *BrowserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterBrowserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Signature) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "signature is required")
		return
	}

	browser, existing, err := h.store.RegisterBrowser(r.Context(), req.Signature)
	if err != nil {
		writeStoreError(w, err, "register browser")
		return
	}

	status := http.StatusOK
	if existing {
		slog.Info("browser registered (existing)", "browser_id", browser.ID)
	} else {
		status = http.StatusCreated
		h.metrics.IncrementBrowsersRegistered()
		slog.Info("browser registered (new)", "browser_id", browser.ID)
	}

	middleware.JSONResponse(w, status, models.RegisterBrowserResponse{
		Identity:    browser,
		WasExisting: existing,
	})
}

// Get handles GET /browsers/{signature}
// Looks up an identity without creating it
func (h *BrowserHandler) Get(w http.ResponseWriter, r *http.Request) {
	signature := r.PathValue("signature")
	if signature == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "signature is required")
		return
	}

	browser, err := h.store.GetBrowser(r.Context(), signature)
	if err != nil {
		writeStoreError(w, err, "get browser")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, browser)
}
