package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"dentalcare/database"
	"dentalcare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// DeleteByEmail returns the number of removed doctors.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *database.DB) DoctorRepository {
	return &mongoDoctorRepo{coll: db.Collection(database.DoctorsCollection)}
}

func (r *mongoDoctorRepo) Create(ctx context.Context, d *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *mongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor %s: %w", email, err)
	}
	return res.DeletedCount, nil
}
