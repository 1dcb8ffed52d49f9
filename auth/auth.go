// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
	ErrAdminDisabled     = errors.New("admin operations disabled")
)

// GenerateID creates a time-ordered UUID (v7) string
func GenerateID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

// ValidateAdminToken checks the provided token against the configured one.
// An empty configured token disables admin operations entirely.
func ValidateAdminToken(provided, expected string) error {
	if expected == "" {
		return ErrAdminDisabled
	}
	// Constant-time comparison to prevent timing attacks
	if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
		return ErrInvalidAdminToken
	}
	return nil
}
