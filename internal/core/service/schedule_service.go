package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// ScheduleService implements CRUD over work-schedule tasks.
type ScheduleService struct {
	repo     ports.ScheduleRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewScheduleService(repo ports.ScheduleRepository, projects ports.ProjectRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, projects: projects, logger: logger}
}

func (s *ScheduleService) Get(ctx context.Context, id string) (*domain.ScheduleTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ScheduleService) List(ctx context.Context, opts ports.ListOptions) ([]domain.ScheduleTask, error) {
	return s.repo.List(ctx, opts)
}

func (s *ScheduleService) Create(ctx context.Context, t *domain.ScheduleTask) (*domain.ScheduleTask, error) {
	if t == nil || t.Task == "" {
		return nil, errors.New("schedule: task description is required")
	}
	if _, err := s.projects.FindByID(ctx, t.ProjectID); err != nil {
		return nil, err
	}
	if t.Status == "" {
		t.Status = domain.TaskPlanned
	}
	t.ID = uuid.NewString()
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info().Str("task_id", t.ID).Str("project_id", t.ProjectID).Msg("schedule task created")
	return t, nil
}

func (s *ScheduleService) Update(ctx context.Context, t *domain.ScheduleTask) error {
	existing, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if t.ProjectID != existing.ProjectID {
		if _, err := s.projects.FindByID(ctx, t.ProjectID); err != nil {
			return err
		}
	}
	existing.ProjectID = t.ProjectID
	existing.EmployeeID = t.EmployeeID
	existing.Task = t.Task
	existing.StartDate = t.StartDate
	existing.EndDate = t.EndDate
	existing.Status = t.Status
	return s.repo.Update(ctx, existing)
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id).Msg("schedule task deleted")
	return nil
}
