package security

import (
	"context"
	"errors"
	"testing"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

type stubCredRepo struct {
	creds map[string]*domain.Credential
}

func (r *stubCredRepo) FindByLogin(_ context.Context, login string) (*domain.Credential, error) {
	if c, ok := r.creds[login]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredRepo) ExistsByLogin(_ context.Context, login string) (bool, error) {
	_, ok := r.creds[login]
	return ok, nil
}

func (r *stubCredRepo) List(context.Context, ports.ListOptions) ([]domain.Credential, error) {
	return nil, nil
}

func (r *stubCredRepo) Create(_ context.Context, c *domain.Credential) error {
	if _, ok := r.creds[c.Login]; ok {
		return domain.ErrUserExists
	}
	clone := *c
	r.creds[c.Login] = &clone
	return nil
}

func (r *stubCredRepo) Update(_ context.Context, c *domain.Credential) error {
	if _, ok := r.creds[c.Login]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *c
	r.creds[c.Login] = &clone
	return nil
}

func (r *stubCredRepo) Delete(_ context.Context, login string) error {
	if _, ok := r.creds[login]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.creds, login)
	return nil
}

func TestNewPrincipal_SingleAuthority(t *testing.T) {
	p := NewPrincipal("alice", domain.RoleAdmin)
	if len(p.Authorities) != 1 || p.Authorities[0] != "ROLE_ADMIN" {
		t.Fatalf("expected single authority ROLE_ADMIN, got %v", p.Authorities)
	}
	if !p.HasRole(domain.RoleAdmin) || p.HasRole(domain.RoleEstimator) {
		t.Fatalf("HasRole mismatch")
	}
}

func TestResolver_Resolve(t *testing.T) {
	repo := &stubCredRepo{creds: map[string]*domain.Credential{
		"alice": {Login: "alice", PasswordHash: "x", Role: domain.RoleScheduler},
	}}
	resolver := NewResolver(repo)

	p, err := resolver.Resolve(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Login != "alice" || p.Role != domain.RoleScheduler {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if len(p.Authorities) != 1 || p.Authorities[0] != "ROLE_SCHEDULER" {
		t.Fatalf("unexpected authorities: %v", p.Authorities)
	}
}

func TestResolver_UserNotFound(t *testing.T) {
	resolver := NewResolver(&stubCredRepo{creds: map[string]*domain.Credential{}})
	if _, err := resolver.Resolve(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
