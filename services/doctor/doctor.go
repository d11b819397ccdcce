package doctor

import (
	"context"
	"errors"

	doctorRepo "dentalcare/database/repository/doctor"
	"dentalcare/models"

	"go.uber.org/zap"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorService interface {
	AddDoctor(ctx context.Context, d models.Doctor) (*models.Doctor, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	RemoveDoctor(ctx context.Context, email string) error
}

type DefaultDoctorService struct {
	Repo   doctorRepo.DoctorRepository
	Logger *zap.Logger
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, d models.Doctor) (*models.Doctor, error) {
	if err := s.Repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	s.Logger.Info("doctor added", zap.String("email", d.Email))
	return &d, nil
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, email string) error {
	n, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDoctorNotFound
	}
	s.Logger.Info("doctor removed", zap.String("email", email))
	return nil
}
