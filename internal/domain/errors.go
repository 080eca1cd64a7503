package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyConfigured is returned by a compare-and-swap claim that lost to an earlier writer.
	ErrAlreadyConfigured = errors.New("already configured")
)
