package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

// AccountUpdate carries the mutable credential fields; empty values are
// left unchanged.
type AccountUpdate struct {
	Password string
	Role     string
}

// AccountService is the administrative surface over user accounts.
type AccountService interface {
	Get(ctx context.Context, login string) (*domain.Credential, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Credential, error)
	Update(ctx context.Context, login string, upd AccountUpdate) (*domain.Credential, error)
	// Delete removes the account and cascades to its 1:1 employee profile.
	Delete(ctx context.Context, login string) error
}
