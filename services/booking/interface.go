package booking

import (
	"context"

	"dentalcare/models"
)

type BookingService interface {
	// CreateBooking admits candidate unless the patient already booked the
	// same treatment on the same date.
	CreateBooking(ctx context.Context, candidate models.Booking) (models.AdmissionResult, error)
	GetPatientBookings(ctx context.Context, patientEmail string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	// CompletePayment marks the booking paid and records the payment.
	CompletePayment(ctx context.Context, id string, payment models.PaymentCompletion) (*models.Booking, error)
}

// AvailabilityInvalidator drops cached availability after the ledger changes.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, date string)
}

// ReminderScheduler queues an appointment reminder for a new booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b models.Booking) error
}
