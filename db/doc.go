// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open accepts the configured database type and URL:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL goes through github.com/lib/pq. SQLite goes through
modernc.org/sqlite with foreign keys enabled and a busy timeout, limited to
a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - browser: fingerprint identities (signature unique)
  - problem: submitted problem descriptions
  - vote: one row per (browser_signature, problem_id)

Each table has a seq column that increases with every insert; listings
order by it, newest first.

# Relationships

	browser 1──* problem   (problem.browser_signature)
	browser 1──* vote      (vote.browser_signature)
	problem 1──* vote      (vote.problem_id)

Foreign keys have no ON DELETE action, so deleting a browser or problem that
is still referenced is refused.
*/
package db
