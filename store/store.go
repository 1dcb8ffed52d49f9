// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/ineedasolution/auth"
	"github.com/danielhkuo/ineedasolution/models"
)

// Store persists browsers, problems and votes.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// RegisterBrowser returns the browser for signature, creating it on first
// contact. existing is true when the row was already there.
func (s *Store) RegisterBrowser(ctx context.Context, signature string) (b models.Browser, existing bool, err error) {
	id, err := auth.GenerateID()
	if err != nil {
		return models.Browser{}, false, err
	}

	// ON CONFLICT keeps concurrent first contacts down to one row
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO browser (id, signature, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (signature) DO NOTHING
	`, id, signature, s.now().UTC())
	if err != nil {
		return models.Browser{}, false, fmt.Errorf("insert browser: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return models.Browser{}, false, fmt.Errorf("insert browser: %w", err)
	}

	b, err = s.GetBrowser(ctx, signature)
	if err != nil {
		return models.Browser{}, false, err
	}

	return b, inserted == 0, nil
}

// GetBrowser looks up a browser by its exact signature.
func (s *Store) GetBrowser(ctx context.Context, signature string) (models.Browser, error) {
	var b models.Browser
	err := s.db.QueryRowContext(ctx, `
		SELECT id, signature, created_at FROM browser WHERE signature = $1
	`, signature).Scan(&b.ID, &b.Signature, &b.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Browser{}, ErrNotFound
	}
	if err != nil {
		return models.Browser{}, fmt.Errorf("query browser: %w", err)
	}

	return b, nil
}

// AddProblem stores a new problem owned by ownerSignature. Input is taken
// as-is; callers validate the description.
func (s *Store) AddProblem(ctx context.Context, description, ownerSignature string) (models.Problem, error) {
	id, err := auth.GenerateID()
	if err != nil {
		return models.Problem{}, err
	}

	p := models.Problem{
		ID:               id,
		Description:      description,
		OwnerFingerprint: ownerSignature,
		CreatedAt:        s.now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO problem (id, description, browser_signature, created_at)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Description, p.OwnerFingerprint, p.CreatedAt)

	if isForeignKeyViolation(err) {
		return models.Problem{}, ErrUnknownReference
	}
	if err != nil {
		return models.Problem{}, fmt.Errorf("insert problem: %w", err)
	}

	return p, nil
}

// ListProblems returns every problem, most recently created first.
func (s *Store) ListProblems(ctx context.Context) ([]models.Problem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, browser_signature, created_at
		FROM problem
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	problems := []models.Problem{}
	for rows.Next() {
		var p models.Problem
		if err := rows.Scan(&p.ID, &p.Description, &p.OwnerFingerprint, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}

	return problems, nil
}

// AddVote records voterSignature's vote on problemID. A second vote for the
// same pair fails with ErrDuplicateVote; the UNIQUE constraint decides, so
// concurrent attempts cannot both succeed.
func (s *Store) AddVote(ctx context.Context, problemID, voterSignature string) (models.Vote, error) {
	id, err := auth.GenerateID()
	if err != nil {
		return models.Vote{}, err
	}

	v := models.Vote{
		ID:               id,
		ProblemID:        problemID,
		VoterFingerprint: voterSignature,
		CreatedAt:        s.now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vote (id, problem_id, browser_signature, created_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.ProblemID, v.VoterFingerprint, v.CreatedAt)

	switch {
	case err == nil:
		return v, nil
	case isUniqueViolation(err):
		return models.Vote{}, ErrDuplicateVote
	case isForeignKeyViolation(err):
		return models.Vote{}, ErrUnknownReference
	default:
		return models.Vote{}, fmt.Errorf("insert vote: %w", err)
	}
}

// ListVotes returns every vote, most recently cast first.
func (s *Store) ListVotes(ctx context.Context) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, problem_id, browser_signature, created_at
		FROM vote
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.ProblemID, &v.VoterFingerprint, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}

// ClearVotes deletes the whole ledger and returns the number of rows removed.
func (s *Store) ClearVotes(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vote`)
	if err != nil {
		return 0, fmt.Errorf("delete votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete votes: %w", err)
	}

	return n, nil
}
