package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"dentalcare/database"
	"dentalcare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository stores completed payment records.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *database.DB) PaymentRepository {
	return &mongoPaymentRepo{coll: db.Collection(database.PaymentsCollection)}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to record payment for booking %s: %w", p.BookingID, err)
	}
	return nil
}
