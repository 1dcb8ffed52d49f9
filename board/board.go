// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package board assembles the problem list a visitor sees: vote counts,
// whether they already voted, and the search-as-you-type filter. It never
// touches storage; callers pass in what they listed.
package board

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/danielhkuo/ineedasolution/models"
)

// Matches reports whether query occurs in description, ignoring case.
// An empty query matches everything.
func Matches(description, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(description), fold.String(query))
}

// Build returns one entry per problem matching query, in the order given.
// Voted is set for problems fingerprint has voted on; an empty fingerprint
// never counts as having voted.
func Build(problems []models.Problem, votes []models.Vote, fingerprint, query string) []models.BoardEntry {
	counts := make(map[string]int, len(problems))
	voted := make(map[string]bool)
	for _, v := range votes {
		counts[v.ProblemID]++
		if fingerprint != "" && v.VoterFingerprint == fingerprint {
			voted[v.ProblemID] = true
		}
	}

	// Fold the query once instead of per problem
	fold := cases.Fold()
	folded := fold.String(query)

	entries := []models.BoardEntry{}
	for _, p := range problems {
		if folded != "" && !strings.Contains(fold.String(p.Description), folded) {
			continue
		}
		entries = append(entries, models.BoardEntry{
			Problem: p,
			Votes:   counts[p.ID],
			Voted:   voted[p.ID],
		})
	}

	return entries
}
