package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

type EmployeeRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	// DeleteByAccountLogin removes the profile owned 1:1 by a user account;
	// absence is not an error since not every account has a profile.
	DeleteByAccountLogin(ctx context.Context, login string) error
}

type EmployeeService interface {
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
