package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

type ScheduleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.ScheduleTask, error)
	List(ctx context.Context, opts ListOptions) ([]domain.ScheduleTask, error)
	Create(ctx context.Context, t *domain.ScheduleTask) error
	Update(ctx context.Context, t *domain.ScheduleTask) error
	Delete(ctx context.Context, id string) error
}

type ScheduleService interface {
	Get(ctx context.Context, id string) (*domain.ScheduleTask, error)
	List(ctx context.Context, opts ListOptions) ([]domain.ScheduleTask, error)
	Create(ctx context.Context, t *domain.ScheduleTask) (*domain.ScheduleTask, error)
	Update(ctx context.Context, t *domain.ScheduleTask) error
	Delete(ctx context.Context, id string) error
}
