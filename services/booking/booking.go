package booking

import (
	"context"
	"fmt"

	bookingRepo "dentalcare/database/repository/booking"
	paymentRepo "dentalcare/database/repository/payment"
	treatmentRepo "dentalcare/database/repository/treatment"
	"dentalcare/models"
	"dentalcare/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements admission and payment completion.
// Availability and Reminders may be nil.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Treatments   treatmentRepo.TreatmentRepository
	Payments     paymentRepo.PaymentRepository
	Availability AvailabilityInvalidator
	Reminders    ReminderScheduler
	Dates        utils.DateValidator
	Logger       *zap.Logger
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, candidate models.Booking) (models.AdmissionResult, error) {
	treatment, err := s.validate(ctx, candidate)
	if err != nil {
		return models.AdmissionResult{}, err
	}

	b := candidate
	b.PatientEmail = utils.NormalizeEmail(b.PatientEmail)
	b.ID = ""
	b.Paid = false
	b.TransactionID = ""
	b.TreatmentID = treatment.ID
	if b.Price == 0 {
		b.Price = treatment.Price
	}

	existing, inserted, err := s.Bookings.InsertIfAbsent(ctx, &b)
	if err != nil {
		return models.AdmissionResult{}, fmt.Errorf("admit booking: %w", err)
	}
	if !inserted {
		s.Logger.Info("duplicate booking rejected",
			zap.String("treatment", b.Treatment),
			zap.String("date", b.Date),
			zap.String("patient", b.PatientEmail))
		return models.AdmissionResult{Success: false, Booking: existing}, nil
	}

	if s.Availability != nil {
		s.Availability.Invalidate(ctx, b.Date)
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, b); err != nil {
			s.Logger.Warn("reminder not scheduled", zap.String("booking", b.ID), zap.Error(err))
		}
	}

	s.Logger.Info("booking admitted",
		zap.String("booking", b.ID),
		zap.String("treatment", b.Treatment),
		zap.String("date", b.Date),
		zap.String("slot", b.Slot))
	return models.AdmissionResult{Success: true, Result: &b}, nil
}

// validate checks the date format and that the slot belongs to a catalog treatment.
func (s *DefaultBookingService) validate(ctx context.Context, b models.Booking) (*models.Treatment, error) {
	if utils.NormalizeEmail(b.PatientEmail) == "" {
		return nil, newValidationError("patientEmail", "is required")
	}
	if err := s.Dates.Validate(b.Date); err != nil {
		return nil, newValidationError("date", "%q is not a valid date", b.Date)
	}

	treatment, err := s.Treatments.GetByName(ctx, b.Treatment)
	if err != nil {
		return nil, fmt.Errorf("look up treatment: %w", err)
	}
	if treatment == nil {
		return nil, newValidationError("treatment", "unknown treatment %q", b.Treatment)
	}
	if !treatment.HasSlot(b.Slot) {
		return nil, newValidationError("slot", "%q is not a slot of %s", b.Slot, treatment.Name)
	}
	return treatment, nil
}

func (s *DefaultBookingService) GetPatientBookings(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	patientEmail = utils.NormalizeEmail(patientEmail)
	bookings, err := s.Bookings.GetByPatient(ctx, patientEmail)
	if err != nil {
		return nil, fmt.Errorf("list bookings of %s: %w", patientEmail, err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) CompletePayment(ctx context.Context, id string, payment models.PaymentCompletion) (*models.Booking, error) {
	if payment.TransactionID == "" {
		return nil, newValidationError("transactionId", "is required")
	}

	b, err := s.Bookings.MarkPaid(ctx, id, payment.TransactionID)
	if err != nil {
		return nil, err
	}

	record := &models.Payment{
		BookingID:     b.ID,
		TransactionID: payment.TransactionID,
		PatientEmail:  b.PatientEmail,
		Amount:        payment.Amount,
	}
	if record.Amount == 0 {
		record.Amount = b.Price
	}
	// The booking is already paid at this point, so a failed record is logged only.
	if err := s.Payments.Create(ctx, record); err != nil {
		s.Logger.Error("payment record failed", zap.String("booking", b.ID), zap.Error(err))
	}
	return b, nil
}
