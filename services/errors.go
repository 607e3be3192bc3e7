package services

import "errors"

// Sentinel errors surfaced to the API layer. Controllers map these to HTTP
// statuses with errors.Is.
var (
	// ErrInvalidAmount rejects non-positive or non-finite scaling input
	// before any mutation happens.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrValidation covers schema-level constraint violations (amount out of
	// range, unknown unit or meal type, malformed date). No partial write.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEntry is a concurrent insert conflict on (user, date).
	ErrDuplicateEntry = errors.New("day entry already exists")

	// ErrFoodNotFound / ErrRateLimited come from the external catalog and are
	// recovered locally; they only reach the caller when the fallback tier
	// also has no answer.
	ErrFoodNotFound = errors.New("food not found")
	ErrRateLimited  = errors.New("catalog rate limited")

	ErrUnauthorized = errors.New("unauthorized")
)
