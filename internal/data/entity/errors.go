package entity

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("booking conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("permission denied")
	ErrPastEvent         = errors.New("event date is in the past")
	ErrAdvanceUnpaid     = errors.New("advance payment not completed")
)
