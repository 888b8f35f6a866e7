package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// EstimateService implements CRUD over cost estimate records. Every record
// must reference an existing project.
type EstimateService struct {
	repo     ports.EstimateRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewEstimateService(repo ports.EstimateRepository, projects ports.ProjectRepository, logger zerolog.Logger) *EstimateService {
	return &EstimateService{repo: repo, projects: projects, logger: logger}
}

func (s *EstimateService) Get(ctx context.Context, id string) (*domain.Estimate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EstimateService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Estimate, error) {
	return s.repo.List(ctx, opts)
}

func (s *EstimateService) Create(ctx context.Context, e *domain.Estimate) (*domain.Estimate, error) {
	if e == nil || e.ExpenseItem == "" {
		return nil, errors.New("estimate: expense item is required")
	}
	if _, err := s.projects.FindByID(ctx, e.ProjectID); err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info().Str("estimate_id", e.ID).Str("project_id", e.ProjectID).Msg("estimate created")
	return e, nil
}

func (s *EstimateService) Update(ctx context.Context, e *domain.Estimate) error {
	existing, err := s.repo.FindByID(ctx, e.ID)
	if err != nil {
		return err
	}
	if e.ProjectID != existing.ProjectID {
		if _, err := s.projects.FindByID(ctx, e.ProjectID); err != nil {
			return err
		}
	}
	existing.ProjectID = e.ProjectID
	existing.ExpenseItem = e.ExpenseItem
	existing.UnitsMeasurement = e.UnitsMeasurement
	existing.Amount = e.Amount
	existing.Price = e.Price
	existing.RecordDate = e.RecordDate
	return s.repo.Update(ctx, existing)
}

func (s *EstimateService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("estimate_id", id).Msg("estimate deleted")
	return nil
}
