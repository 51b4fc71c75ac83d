package entity

import "errors"

// Domain errors shared across the client. The API and usecase layers wrap
// these with context; callers match with errors.Is.
var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrQuotaExceeded      = errors.New("lookup quota exceeded")
	ErrNetwork            = errors.New("network failure")
	ErrWordNotFound       = errors.New("word not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCardNotFound       = errors.New("card not found")

	ErrInvalidWordText       = errors.New("invalid word text")
	ErrInvalidCollectionName = errors.New("invalid collection name")
	ErrInvalidRating         = errors.New("rating must be between 1 and 4")
	ErrSessionCompleted      = errors.New("review session already completed")
	ErrGenerationInFlight    = errors.New("card generation already in flight")
)
