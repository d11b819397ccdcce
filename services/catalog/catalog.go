package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	treatmentRepo "dentalcare/database/repository/treatment"
	"dentalcare/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTreatment = errors.New("invalid treatment")

// Invalidator drops cached availability when the catalog changes.
type Invalidator interface {
	InvalidateAll(ctx context.Context)
}

type CatalogService interface {
	ListSummaries(ctx context.Context) ([]models.TreatmentSummary, error)
	UpsertTreatment(ctx context.Context, t models.Treatment) (*models.Treatment, error)
	Seed(ctx context.Context, treatments []models.Treatment) error
}

// DefaultCatalogService manages the Slot Catalog. Availability may be nil.
type DefaultCatalogService struct {
	Repo         treatmentRepo.TreatmentRepository
	Availability Invalidator
	Logger       *zap.Logger
}

func (s *DefaultCatalogService) ListSummaries(ctx context.Context) ([]models.TreatmentSummary, error) {
	return s.Repo.GetSummaries(ctx)
}

func (s *DefaultCatalogService) UpsertTreatment(ctx context.Context, t models.Treatment) (*models.Treatment, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	if err := s.Repo.Upsert(ctx, &t); err != nil {
		return nil, err
	}
	if s.Availability != nil {
		s.Availability.InvalidateAll(ctx)
	}
	return &t, nil
}

// Seed upserts every treatment, stopping at the first invalid entry.
func (s *DefaultCatalogService) Seed(ctx context.Context, treatments []models.Treatment) error {
	for _, t := range treatments {
		if err := Validate(t); err != nil {
			return err
		}
		if err := s.Repo.Upsert(ctx, &t); err != nil {
			return err
		}
	}
	if s.Availability != nil {
		s.Availability.InvalidateAll(ctx)
	}
	s.Logger.Info("catalog seeded", zap.Int("treatments", len(treatments)))
	return nil
}

// Validate requires a name and a non-empty list of distinct slot labels.
func Validate(t models.Treatment) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTreatment)
	}
	if len(t.Slots) == 0 {
		return fmt.Errorf("%w: %s has no slots", ErrInvalidTreatment, t.Name)
	}
	seen := make(map[string]struct{}, len(t.Slots))
	for _, slot := range t.Slots {
		if slot == "" {
			return fmt.Errorf("%w: %s has an empty slot", ErrInvalidTreatment, t.Name)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("%w: %s lists slot %q twice", ErrInvalidTreatment, t.Name, slot)
		}
		seen[slot] = struct{}{}
	}
	if t.Price < 0 {
		return fmt.Errorf("%w: %s has a negative price", ErrInvalidTreatment, t.Name)
	}
	return nil
}

type seedFile struct {
	Treatments []models.Treatment `yaml:"treatments"`
}

// LoadSeedFile reads a YAML catalog of the form
//
//	treatments:
//	  - name: Teeth Cleaning
//	    price: 80
//	    slots: ["08:00 AM - 08:30 AM", "08:30 AM - 09:00 AM"]
func LoadSeedFile(path string) ([]models.Treatment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) ([]models.Treatment, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return f.Treatments, nil
}
