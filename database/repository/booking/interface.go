// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"dentalcare/database"
	"dentalcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyPaid     = errors.New("booking already paid")
)

// BookingRepository is the Booking Ledger storage.
type BookingRepository interface {
	// InsertIfAbsent stores b unless a booking with the same treatment, date
	// and patient email exists. On conflict the stored booking is returned and
	// inserted is false.
	InsertIfAbsent(ctx context.Context, b *models.Booking) (existing *models.Booking, inserted bool, err error)
	// FindByKey returns nil, nil when no booking matches.
	FindByKey(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// MarkPaid flips an unpaid booking to paid exactly once.
	MarkPaid(ctx context.Context, id, transactionID string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository. It fails when
// the unique admission index cannot be built, since InsertIfAbsent relies on it.
func NewMongoBookingRepo(db *database.DB) (BookingRepository, error) {
	repo, err := newMongoBookingRepo(context.Background(), db.Collection(database.BookingsCollection))
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func newMongoBookingRepo(ctx context.Context, coll *mongo.Collection) (*mongoBookingRepo, error) {
	repo := &mongoBookingRepo{coll: coll}
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
