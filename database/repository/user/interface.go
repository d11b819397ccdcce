package userRepo

import (
	"context"

	"dentalcare/database"
	"dentalcare/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Upsert creates the user or updates its profile fields.
	Upsert(ctx context.Context, email string, profile models.UserProfile) (models.UpsertResult, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByEmail returns nil, nil when the user does not exist.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// SetRole updates the role of an existing user and reports whether it matched.
	SetRole(ctx context.Context, email, role string) (bool, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *database.DB) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection(database.UsersCollection)}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		zap.L().Warn("user indexes not created", zap.Error(err))
	}
	return repo
}
