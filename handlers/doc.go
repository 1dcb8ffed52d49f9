// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ineedasolution API.

# Handler Types

Each handler is a struct holding a Store and, where it counts events, the
metrics collector:

  - BrowserHandler: fingerprint registration and lookup
  - ProblemHandler: problem catalog listing and submission
  - VoteHandler: voting ledger listing, casting and clearing
  - BoardHandler: combined problems-with-votes view

Handlers depend on the Store interface rather than *sql.DB, so tests can
substitute the generated mock in the mocks package:

	problemHandler := handlers.NewProblemHandler(store.New(db), m)

# Validation

Input is checked before the store is touched. Blank signatures, blank
descriptions (after trimming) and blank vote fields answer 400.

# Error Mapping

Store errors map to HTTP status codes:

	store.ErrNotFound         → 404
	store.ErrDuplicateVote    → 409 "You have voted on this problem before"
	store.ErrUnknownReference → 422
	anything else             → 500 "Database error"
*/
package handlers
