// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and admin token validation.

There are no user accounts. Visitors are identified by an opaque browser
fingerprint they send with each call; the server never issues credentials
to them.

# Identifiers

Record IDs are UUIDv7 strings, so they sort roughly by creation time:

	id, err := auth.GenerateID()

# Admin Tokens

Administrative operations (clearing the vote ledger) require the
X-Admin-Token header to match the configured ADMIN_TOKEN:

	err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), cfg.AdminToken)

Comparison is constant-time. When no token is configured every admin
call fails with ErrAdminDisabled.
*/
package auth
