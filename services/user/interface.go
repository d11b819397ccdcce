package user

import (
	"context"
	"errors"

	"dentalcare/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	// SignIn upserts the profile of email and issues an access token.
	SignIn(ctx context.Context, email string, profile models.UserProfile) (models.UpsertResult, string, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	MakeAdmin(ctx context.Context, email string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	// GetRole returns the stored role, or the patient role for unknown users.
	GetRole(ctx context.Context, email string) (string, error)
}

// TokenGenerator issues access tokens for a user email.
type TokenGenerator interface {
	GenerateToken(email string) (string, error)
}
