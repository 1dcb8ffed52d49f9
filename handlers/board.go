// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/ineedasolution/board"
	"github.com/danielhkuo/ineedasolution/middleware"
	"github.com/danielhkuo/ineedasolution/models"
)

type BoardHandler struct {
	store Store
}

func NewBoardHandler(s Store) *BoardHandler {
	return &BoardHandler{store: s}
}

// Get handles GET /board?fingerprint=...&q=...
// Returns problems newest first with vote counts, filtered by q
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	problems, err := h.store.ListProblems(r.Context())
	if err != nil {
		writeStoreError(w, err, "list problems")
		return
	}

	votes, err := h.store.ListVotes(r.Context())
	if err != nil {
		writeStoreError(w, err, "list votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BoardResponse{
		Entries: board.Build(problems, votes, query.Get("fingerprint"), query.Get("q")),
	})
}
