// File: database/repository/treatment/interface.go
package treatmentRepo

import (
	"context"

	"dentalcare/database"
	"dentalcare/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TreatmentRepository is the Slot Catalog storage.
type TreatmentRepository interface {
	// GetAll returns every treatment with its full slot list.
	GetAll(ctx context.Context) ([]models.Treatment, error)
	// GetSummaries returns treatment ids and names only.
	GetSummaries(ctx context.Context) ([]models.TreatmentSummary, error)
	// GetByName returns nil, nil when no treatment has the name.
	GetByName(ctx context.Context, name string) (*models.Treatment, error)
	// Upsert creates or replaces the treatment keyed by name and loads the
	// stored document back into t.
	Upsert(ctx context.Context, t *models.Treatment) error
}

type mongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo constructs a MongoDB TreatmentRepository.
func NewMongoTreatmentRepo(db *database.DB) TreatmentRepository {
	repo := &mongoTreatmentRepo{coll: db.Collection(database.TreatmentsCollection)}
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Warn("treatment indexes not created", zap.Error(err))
	}
	return repo
}
