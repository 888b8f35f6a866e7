package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// EmployeeService implements CRUD over staff profiles.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Employee, error) {
	return s.repo.List(ctx, opts)
}

func (s *EmployeeService) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if e == nil || e.FullName == "" {
		return nil, errors.New("employee: full name is required")
	}
	e.ID = uuid.NewString()
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info().Str("employee_id", e.ID).Msg("employee created")
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, e *domain.Employee) error {
	existing, err := s.repo.FindByID(ctx, e.ID)
	if err != nil {
		return err
	}
	existing.FullName = e.FullName
	existing.Position = e.Position
	existing.AccountLogin = e.AccountLogin
	return s.repo.Update(ctx, existing)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
