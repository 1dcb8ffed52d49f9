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

type ProblemHandler struct {
	store   Store
	metrics *metrics.Metrics
}

func NewProblemHandler(s Store, m *metrics.Metrics) *ProblemHandler {
	return &ProblemHandler{store: s, metrics: m}
}

// List handles GET /problems
func (h *ProblemHandler) List(w http.ResponseWriter, r *http.Request) {
	problems, err := h.store.ListProblems(r.Context())
	if err != nil {
		writeStoreError(w, err, "list problems")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, problems)
}

// Add handles POST /problems
func (h *ProblemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddProblemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Original text is stored; trimming only decides emptiness
	if strings.TrimSpace(req.Description) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}
	if strings.TrimSpace(req.OwnerFingerprint) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "owner_fingerprint is required")
		return
	}

	problem, err := h.store.AddProblem(r.Context(), req.Description, req.OwnerFingerprint)
	if err != nil {
		writeStoreError(w, err, "add problem")
		return
	}

	h.metrics.IncrementProblemsCreated()
	slog.Info("problem created", "problem_id", problem.ID)

	middleware.JSONResponse(w, http.StatusCreated, problem)
}
