package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownProfile indicates an analysis profile that is not registered.
	ErrUnknownProfile = errors.New("unknown analysis profile")

	// ErrProfileExists indicates a composer is already registered for a profile.
	ErrProfileExists = errors.New("profile already registered")

	// ErrVisionUnavailable indicates the vision service is not configured.
	// Image analysis is disabled; composition from a features file still works.
	ErrVisionUnavailable = errors.New("vision service unavailable")

	// ErrNoImages indicates an analysis request carried no images.
	ErrNoImages = errors.New("no images provided")
)
