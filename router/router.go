// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ineedasolution/cliparse"
	"github.com/danielhkuo/ineedasolution/handlers"
	"github.com/danielhkuo/ineedasolution/metrics"
	"github.com/danielhkuo/ineedasolution/middleware"
	"github.com/danielhkuo/ineedasolution/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	s := store.New(db)

	// Initialize handlers
	browserHandler := handlers.NewBrowserHandler(s, m)
	problemHandler := handlers.NewProblemHandler(s, m)
	voteHandler := handlers.NewVoteHandler(s, m)
	boardHandler := handlers.NewBoardHandler(s)

	// route registers pattern with logging and latency metrics
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(m.Instrument(pattern, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unreachable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Identity
	route("POST /browsers", browserHandler.Register)
	route("GET /browsers/{signature}", browserHandler.Get)

	// Problem catalog
	route("GET /problems", problemHandler.List)
	route("POST /problems", problemHandler.Add)

	// Voting ledger
	route("GET /votes", voteHandler.List)
	route("POST /votes", voteHandler.Add)
	route("DELETE /votes", middleware.RequireAdminToken(cfg.AdminToken, voteHandler.Clear))

	// Presentation view
	route("GET /board", boardHandler.Get)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ineedasolution API v1"))
	})

	return middleware.CORS(mux)
}
