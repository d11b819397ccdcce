package availability

import (
	"context"
	"fmt"

	bookingRepo "dentalcare/database/repository/booking"
	treatmentRepo "dentalcare/database/repository/treatment"
	"dentalcare/models"

	"go.uber.org/zap"
)

// AvailabilityService serves per-date availability to the HTTP layer.
type AvailabilityService interface {
	GetAvailability(ctx context.Context, date string) ([]models.Treatment, error)
	// Invalidate drops any cached snapshot for date.
	Invalidate(ctx context.Context, date string)
	// InvalidateAll drops every cached snapshot.
	InvalidateAll(ctx context.Context)
}

// DefaultAvailabilityService joins the catalog with the bookings of a date.
// Cache may be nil.
type DefaultAvailabilityService struct {
	Treatments treatmentRepo.TreatmentRepository
	Bookings   bookingRepo.BookingRepository
	Cache      SnapshotCache
	Logger     *zap.Logger
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, date string) ([]models.Treatment, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, date); ok {
			return cached, nil
		}
	}

	treatments, err := s.Treatments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list treatments: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", date, err)
	}

	available := ComputeAvailability(date, treatments, bookings)
	s.Logger.Debug("availability computed",
		zap.String("date", date),
		zap.Int("treatments", len(treatments)),
		zap.Int("bookings", len(bookings)))

	if s.Cache != nil {
		s.Cache.Set(ctx, date, available)
	}
	return available, nil
}

func (s *DefaultAvailabilityService) Invalidate(ctx context.Context, date string) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, date)
	}
}

func (s *DefaultAvailabilityService) InvalidateAll(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.InvalidateAll(ctx)
	}
}
