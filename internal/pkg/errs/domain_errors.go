package errs

import "errors"

// Domain-specific sentinel errors shared by the booking and staff usecases
var (
	// Booking errors
	ErrInvalidDate     = errors.New("date must be in the future")
	ErrDuplicateTicket = errors.New("ticket number already exists")
	ErrIncompleteDraft = errors.New("appointment draft is incomplete")

	// Staff errors
	ErrStaffOnly           = errors.New("staff access required")
	ErrNotStaff            = errors.New("not in staff mode")
	ErrNoPasscode          = errors.New("no passcode provided")
	ErrInvalidPasscode     = errors.New("invalid passcode")
	ErrTooManyAttempts     = errors.New("too many passcode attempts")
	ErrTicketRequired      = errors.New("ticket number required")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
