package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// ProjectService implements CRUD over projects. The responsible employee,
// when set, must exist.
type ProjectService struct {
	repo      ports.ProjectRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, employees: employees, logger: logger}
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Project, error) {
	return s.repo.List(ctx, opts)
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p == nil || p.Name == "" {
		return nil, errors.New("project: name is required")
	}
	if err := s.checkResponsible(ctx, p.ResponsibleID); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info().Str("project_id", p.ID).Str("name", p.Name).Msg("project created")
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, p *domain.Project) error {
	existing, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := s.checkResponsible(ctx, p.ResponsibleID); err != nil {
		return err
	}
	existing.Name = p.Name
	existing.Client = p.Client
	existing.StartDate = p.StartDate
	existing.EndDate = p.EndDate
	existing.ResponsibleID = p.ResponsibleID
	existing.Budget = p.Budget
	return s.repo.Update(ctx, existing)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) checkResponsible(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return nil
	}
	_, err := s.employees.FindByID(ctx, employeeID)
	return err
}
