package user

import (
	"context"
	"fmt"

	userRepo "dentalcare/database/repository/user"
	"dentalcare/models"
	"dentalcare/utils"

	"go.uber.org/zap"
)

type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenGenerator
	Logger *zap.Logger
}

func (s *DefaultUserService) SignIn(ctx context.Context, email string, profile models.UserProfile) (models.UpsertResult, string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return models.UpsertResult{}, "", fmt.Errorf("email is required")
	}

	result, err := s.Repo.Upsert(ctx, email, profile)
	if err != nil {
		return models.UpsertResult{}, "", err
	}
	token, err := s.Tokens.GenerateToken(email)
	if err != nil {
		return models.UpsertResult{}, "", fmt.Errorf("issue token: %w", err)
	}
	return result, token, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	matched, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return err
	}
	if !matched {
		return ErrUserNotFound
	}
	s.Logger.Info("admin role granted", zap.String("email", email))
	return nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.GetRole(ctx, email)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

func (s *DefaultUserService) GetRole(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil {
		return models.RolePatient, nil
	}
	return u.Role, nil
}
