// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterBrowserRequest: signature
  - AddProblemRequest: description, owner_fingerprint
  - AddVoteRequest: problem_id, voter_fingerprint

# Response Types

Types for JSON responses:

  - RegisterBrowserResponse: identity, was_existing
  - ClearVotesResponse: removed
  - BoardResponse: entries
  - ErrorResponse: error, message

# Domain Types

  - Browser: an identity keyed by its fingerprint signature
  - Problem: free-text description attributed to a fingerprint
  - Vote: one fingerprint's endorsement of one problem
  - BoardEntry: a problem with its vote count and the viewer's vote state
*/
package models
