// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type RegisterBrowserRequest struct {
	Signature string `json:"signature"`
}

type AddProblemRequest struct {
	Description      string `json:"description"`
	OwnerFingerprint string `json:"owner_fingerprint"`
}

type AddVoteRequest struct {
	ProblemID        string `json:"problem_id"`
	VoterFingerprint string `json:"voter_fingerprint"`
}

// Response types

type RegisterBrowserResponse struct {
	Identity    Browser `json:"identity"`
	WasExisting bool    `json:"was_existing"`
}

type ClearVotesResponse struct {
	Removed int64 `json:"removed"`
}

type BoardResponse struct {
	Entries []BoardEntry `json:"entries"`
}

// Domain types

type Browser struct {
	ID        string    `json:"id"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}

type Problem struct {
	ID               string    `json:"id"`
	Description      string    `json:"description"`
	OwnerFingerprint string    `json:"owner_fingerprint"`
	CreatedAt        time.Time `json:"created_at"`
}

type Vote struct {
	ID               string    `json:"id"`
	ProblemID        string    `json:"problem_id"`
	VoterFingerprint string    `json:"voter_fingerprint"`
	CreatedAt        time.Time `json:"created_at"`
}

// BoardEntry is a problem as shown to one visitor.
type BoardEntry struct {
	Problem Problem `json:"problem"`
	Votes   int     `json:"votes"`
	Voted   bool    `json:"voted"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
