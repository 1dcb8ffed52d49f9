// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ineedasolution/metrics"
	"github.com/danielhkuo/ineedasolution/middleware"
	"github.com/danielhkuo/ineedasolution/models"
	"github.com/danielhkuo/ineedasolution/store"
)

type VoteHandler struct {
	store   Store
	metrics *metrics.Metrics
}

func NewVoteHandler(s Store, m *metrics.Metrics) *VoteHandler {
	return &VoteHandler{store: s, metrics: m}
}

// List handles GET /votes
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.ListVotes(r.Context())
	if err != nil {
		writeStoreError(w, err, "list votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// Add handles POST /votes
func (h *VoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.ProblemID) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "problem_id is required")
		return
	}
	if strings.TrimSpace(req.VoterFingerprint) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_fingerprint is required")
		return
	}

	vote, err := h.store.AddVote(r.Context(), req.ProblemID, req.VoterFingerprint)
	if errors.Is(err, store.ErrDuplicateVote) {
		h.metrics.IncrementDuplicateVotes()
		slog.Info("duplicate vote rejected", "problem_id", req.ProblemID)
	}
	if err != nil {
		writeStoreError(w, err, "add vote")
		return
	}

	h.metrics.IncrementVotesCast()
	slog.Info("vote cast", "vote_id", vote.ID, "problem_id", vote.ProblemID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// Clear handles DELETE /votes
// Admin only; the router wraps it with RequireAdminToken
func (h *VoteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.ClearVotes(r.Context())
	if err != nil {
		writeStoreError(w, err, "clear votes")
		return
	}

	h.metrics.AddVotesCleared(removed)
	slog.Warn("vote ledger cleared", "removed", removed, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.ClearVotesResponse{Removed: removed})
}
