// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ineedasolution API server.

ineedasolution lets anonymous visitors post problems they wish someone
would solve and vote on the problems others have posted. Visitors are
identified only by a browser fingerprint; each fingerprint may vote at
most once per problem.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	DATABASE_URL=file:ineedasolution.db go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_TOKEN (-admin-token): enables DELETE /votes when set
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - -env-file: dotenv file to load (default: .env)

# Architecture

  - handlers: HTTP handlers over the store interface
  - store: identity registry, problem catalog and voting ledger
  - board: merges problems and votes into the presentation view
  - router: route table using Go 1.22+ patterns
  - middleware: CORS, logging, admin token, JSON helpers
  - metrics: Prometheus counters and request latency
  - models: request, response and domain types
  - auth: ID generation and admin token checks
  - db: connection setup and schema creation
  - cliparse: configuration parsing
*/
package main
