package errs

import "errors"

// Sentinel errors recovered at the booking-conversation or admin boundary
var (
	// Slot / availability errors
	ErrSlotUnavailable = errors.New("slot unavailable")
	ErrSlotConflict    = errors.New("slot conflict")
	ErrDateTooFar      = errors.New("date beyond booking horizon")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTransition   = errors.New("invalid status transition")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Operation errors
	ErrStorageFailure = errors.New("storage operation failed")
)
