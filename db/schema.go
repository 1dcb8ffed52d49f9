// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ineedasolution/cliparse"
)

// sqlitePragmas are applied when the URL does not set its own
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Open connects to the database named by dbType ("sqlite" or "postgres")
// and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var conn *sql.DB
	var err error

	switch dbType {
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", url)
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(url))
		if err == nil {
			// SQLite allows one writer; a single connection serializes writes
			// instead of surfacing SQLITE_BUSY to callers.
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + sqlitePragmas
	}
	return url + "?" + sqlitePragmas
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case cliparse.DatabasePostgres:
		ddl = postgresSchema
	case cliparse.DatabaseSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Browsers (fingerprint identities)
CREATE TABLE IF NOT EXISTS browser (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    signature TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Problems
CREATE TABLE IF NOT EXISTS problem (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    browser_signature TEXT NOT NULL REFERENCES browser(signature),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_problem_browser_signature ON problem(browser_signature);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    problem_id TEXT NOT NULL REFERENCES problem(id),
    browser_signature TEXT NOT NULL REFERENCES browser(signature),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (browser_signature, problem_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_problem_id ON vote(problem_id);
`

const sqliteSchema = `
-- Browsers (fingerprint identities)
CREATE TABLE IF NOT EXISTS browser (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    signature TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- Problems
CREATE TABLE IF NOT EXISTS problem (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    browser_signature TEXT NOT NULL REFERENCES browser(signature),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_problem_browser_signature ON problem(browser_signature);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    problem_id TEXT NOT NULL REFERENCES problem(id),
    browser_signature TEXT NOT NULL REFERENCES browser(signature),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (browser_signature, problem_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_problem_id ON vote(problem_id);
`
