package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

type EstimateRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Estimate, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Estimate, error)
	Create(ctx context.Context, e *domain.Estimate) error
	Update(ctx context.Context, e *domain.Estimate) error
	Delete(ctx context.Context, id string) error
}

type EstimateService interface {
	Get(ctx context.Context, id string) (*domain.Estimate, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Estimate, error)
	Create(ctx context.Context, e *domain.Estimate) (*domain.Estimate, error)
	Update(ctx context.Context, e *domain.Estimate) error
	Delete(ctx context.Context, id string) error
}
