package security

import (
	"context"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// Principal is the resolved identity attached to a request after successful
// authentication. It is constructed fresh per request from a verified token
// and discarded at request end; nothing here is persisted.
type Principal struct {
	Login       string
	Role        domain.Role
	Authorities []string
}

// NewPrincipal derives the principal for a credential. The single authority
// is "ROLE_"+role; one role per user, one authority.
func NewPrincipal(login string, role domain.Role) *Principal {
	return &Principal{
		Login:       login,
		Role:        role,
		Authorities: []string{role.Authority()},
	}
}

// HasRole reports whether the principal's stored role matches.
func (p *Principal) HasRole(role domain.Role) bool {
	return p != nil && p.Role == role
}

// Resolver reconstructs an authenticated principal from the credential
// store. The granted role always comes from the stored credential, never
// from token claims.
type Resolver struct {
	repo ports.CredentialRepository
}

func NewResolver(repo ports.CredentialRepository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve loads the credential for login and maps it to a Principal.
// Returns domain.ErrUserNotFound when the login is absent.
func (r *Resolver) Resolve(ctx context.Context, login string) (*Principal, error) {
	cred, err := r.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	return NewPrincipal(cred.Login, cred.Role), nil
}
