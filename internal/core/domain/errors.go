package domain

import "errors"

// Auth errors.
var (
	ErrMissingFields      = errors.New("missing fields")
	ErrUsernameTaken      = errors.New("username taken")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// Catalog and review errors.
var (
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 10")
)

// ErrCacheMiss signals that a cache lookup found nothing; callers fall
// through to the primary store.
var ErrCacheMiss = errors.New("cache miss")
