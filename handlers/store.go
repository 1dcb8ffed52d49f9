// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ineedasolution/middleware"
	"github.com/danielhkuo/ineedasolution/models"
	"github.com/danielhkuo/ineedasolution/store"
)

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks Store

// Store is the persistence the handlers need. *store.Store implements it.
type Store interface {
	RegisterBrowser(ctx context.Context, signature string) (models.Browser, bool, error)
	GetBrowser(ctx context.Context, signature string) (models.Browser, error)
	AddProblem(ctx context.Context, description, ownerSignature string) (models.Problem, error)
	ListProblems(ctx context.Context) ([]models.Problem, error)
	AddVote(ctx context.Context, problemID, voterSignature string) (models.Vote, error)
	ListVotes(ctx context.Context) ([]models.Vote, error)
	ClearVotes(ctx context.Context) (int64, error)
}

var _ Store = (*store.Store)(nil)

// writeStoreError maps store errors to HTTP responses. Anything unrecognized
// is logged and reported as a generic database error.
func writeStoreError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Browser not registered")
	case errors.Is(err, store.ErrDuplicateVote):
		middleware.ErrorResponse(w, http.StatusConflict, "You have voted on this problem before")
	case errors.Is(err, store.ErrUnknownReference):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Unknown problem or fingerprint")
	default:
		slog.Error("store operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
