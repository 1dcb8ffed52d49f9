// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists fingerprint identities, problems and votes.

	s := store.New(conn)

	b, existing, err := s.RegisterBrowser(ctx, signature)
	p, err := s.AddProblem(ctx, "need a better search engine", signature)
	v, err := s.AddVote(ctx, p.ID, signature)

# Identities

RegisterBrowser is idempotent: the first call for a signature inserts a row,
later calls return the same row with existing set to true.

# Votes

A browser may vote on a problem once. The vote table carries
UNIQUE (browser_signature, problem_id) and AddVote is a single INSERT, so
the database rejects the second of two racing requests. Either driver's
constraint error comes back as ErrDuplicateVote.

# Errors

  - ErrNotFound: no browser with that signature
  - ErrDuplicateVote: the pair already has a vote
  - ErrUnknownReference: the problem or fingerprint referenced does not exist

Anything else is a storage failure, wrapped with the failing step.
*/
package store
