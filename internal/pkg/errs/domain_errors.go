package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrDateRangeConflict = errors.New("date range conflict")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
