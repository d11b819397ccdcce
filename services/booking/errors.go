package booking

import (
	"fmt"

	bookingRepo "dentalcare/database/repository/booking"
)

var (
	ErrBookingNotFound = bookingRepo.ErrBookingNotFound
	ErrAlreadyPaid     = bookingRepo.ErrAlreadyPaid
)

// ValidationError rejects a booking candidate at the boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
