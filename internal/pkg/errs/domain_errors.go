package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Flyer errors
	ErrFlyerNotFound   = errors.New("flyer not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidReaction = errors.New("invalid reaction kind")

	// Quota errors
	ErrQuotaExceeded = errors.New("weekly posting quota exceeded")

	// Operation errors
	ErrTransientFailure        = errors.New("transient store failure")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
