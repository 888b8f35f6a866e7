package ports

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
)

// LoginResult carries the issued token together with the role stored on the
// credential. The token payload may assert a different, client-requested
// role; authorization decisions always use the stored one.
type LoginResult struct {
	Token string
	Role  domain.Role
}

type AuthService interface {
	// Login authenticates the login/password pair and issues a token. The
	// requestedRole, when non-empty, is embedded in the token payload as-is.
	Login(ctx context.Context, login, password, requestedRole string) (*LoginResult, error)
	// Register creates a new credential and issues a token for it.
	Register(ctx context.Context, login, password string, role domain.Role) (*LoginResult, error)
}
