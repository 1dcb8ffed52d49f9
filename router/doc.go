// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ineedasolution API.

# Route Registration

NewRouter builds the handler tree, wrapped in CORS:

	h := router.NewRouter(db, cfg, metrics.New())

# Endpoints

Service:

	GET /          - Banner
	GET /health    - Liveness (pings the database)
	GET /metrics   - Prometheus metrics

Identity:

	POST /browsers             - Register a fingerprint (idempotent)
	GET  /browsers/{signature} - Look up a fingerprint

Problem catalog:

	GET  /problems - All problems, newest first
	POST /problems - Submit a problem

Voting ledger:

	GET    /votes - All votes, newest first
	POST   /votes - Cast a vote (409 if already voted)
	DELETE /votes - Clear the ledger (requires X-Admin-Token)

Presentation:

	GET /board?fingerprint=...&q=... - Problems with vote counts and voted flag

# Handler Initialization

All handlers share one store.Store over the database connection and one
metrics.Metrics. Every API route is wrapped with request logging and a
latency histogram labelled by its pattern.
*/
package router
