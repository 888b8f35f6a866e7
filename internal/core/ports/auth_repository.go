package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

// CredentialRepository is the persistence boundary for user accounts.
// Create must enforce login uniqueness at the storage layer so that
// concurrent registrations with the same login cannot both succeed.
type CredentialRepository interface {
	FindByLogin(ctx context.Context, login string) (*domain.Credential, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
	Update(ctx context.Context, cred *domain.Credential) error
	Delete(ctx context.Context, login string) error
}
