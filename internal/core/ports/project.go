package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
