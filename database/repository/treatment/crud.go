// File: database/repository/treatment/crud.go
package treatmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dentalcare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTreatmentRepo) GetAll(ctx context.Context) ([]models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	defer cursor.Close(ctx)

	treatments := []models.Treatment{}
	if err := cursor.All(ctx, &treatments); err != nil {
		return nil, fmt.Errorf("failed to decode treatments: %w", err)
	}
	return treatments, nil
}

func (r *mongoTreatmentRepo) GetSummaries(ctx context.Context) ([]models.TreatmentSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"id": 1, "name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment names: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.TreatmentSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode treatment names: %w", err)
	}
	return summaries, nil
}

func (r *mongoTreatmentRepo) GetByName(ctx context.Context, name string) (*models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t models.Treatment
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch treatment %q: %w", name, err)
	}
	return &t, nil
}

func (r *mongoTreatmentRepo) Upsert(ctx context.Context, t *models.Treatment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	id := t.ID
	if id == "" {
		id = uuid.New().String()
	}
	update := bson.M{
		"$set":         bson.M{"slots": t.Slots, "price": t.Price},
		"$setOnInsert": bson.M{"id": id},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Treatment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"name": t.Name}, update, opts).Decode(&stored); err != nil {
		return fmt.Errorf("failed to upsert treatment %q: %w", t.Name, err)
	}
	*t = stored
	return nil
}
