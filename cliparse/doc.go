// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminToken: Token required to clear the vote ledger (optional)
  - LogLevel: slog level (default: info)
  - EnvFile: dotenv file read before the environment fallback (default: .env)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin-token  Admin token
	-log-level    Log level
	-env-file     Dotenv file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_TOKEN   → -admin-token
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables, and variables already
set in the process environment take precedence over the dotenv file. A
missing dotenv file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number
  - DATABASE_TYPE is not sqlite or postgres
  - LOG_LEVEL is not a valid slog level

Leaving ADMIN_TOKEN empty disables DELETE /votes.
*/
package cliparse
