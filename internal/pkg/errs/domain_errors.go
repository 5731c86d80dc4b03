package errs

import "errors"

// Domain-specific sentinel errors shared by usecase layers
var (
	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot already booked")
	ErrInvalidStatus       = errors.New("unrecognized appointment status")
	ErrInvalidService      = errors.New("unrecognized service code")
	ErrInvalidDate         = errors.New("malformed date")
	ErrInvalidSlot         = errors.New("time is not a bookable slot")

	// Break errors
	ErrBreakNotFound = errors.New("break not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed   = errors.New("store operation failed")
	ErrCalendarUnavailable    = errors.New("calendar service unavailable")
	ErrNotificationFailed     = errors.New("notification delivery failed")
	ErrTransitionNotPermitted = errors.New("status transition not permitted")
)
