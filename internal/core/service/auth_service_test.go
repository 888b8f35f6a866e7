package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
	"github.com/electroleed/project-office/internal/security"
)

type stubCredRepo struct {
	creds map[string]*domain.Credential
}

func newStubCredRepo() *stubCredRepo {
	return &stubCredRepo{creds: make(map[string]*domain.Credential)}
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

func (r *stubCredRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.Credential, error) {
	out := make([]domain.Credential, 0, len(r.creds))
	for _, c := range r.creds {
		out = append(out, *c)
	}
	return out, nil
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

func newTestAuthService(t *testing.T, repo ports.CredentialRepository) (*AuthService, *security.Codec) {
	t.Helper()
	codec, err := security.NewCodec("secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAuthService(repo, codec, zerolog.Nop()), codec
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubCredRepo()
	svc, codec := newTestAuthService(t, repo)

	result, err := svc.Register(context.Background(), "alice", "secret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", result.Role)
	}

	stored := repo.creds["alice"]
	if stored == nil {
		t.Fatalf("credential not stored")
	}
	if stored.PasswordHash == "secret" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	info, err := codec.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if info.Login != "alice" || info.Role != "ADMIN" {
		t.Fatalf("unexpected token claims: %+v", info)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubCredRepo()
	svc, _ := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "bob", "pass", domain.RoleEstimator); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other", domain.RoleEstimator); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubCredRepo())

	if _, err := svc.Register(context.Background(), "", "pass", domain.RoleAdmin); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty login, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "carol", "pass", domain.Role("SUPERUSER")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubCredRepo()
	svc, codec := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "alice", "secret", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "secret", "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("expected stored role ADMIN, got %s", result.Role)
	}

	info, err := codec.Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if info.Login != "alice" || info.Role != "ADMIN" {
		t.Fatalf("unexpected claims: %+v", info)
	}
}

// The token payload carries the client-requested role verbatim while the
// returned (and authorization-relevant) role is always the stored one.
func TestAuthService_Login_RequestedRoleDivergence(t *testing.T) {
	repo := newStubCredRepo()
	svc, codec := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "alice", "secret", domain.RoleAdmin); err != nil {
		t.Fatalf("register: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice", "secret", "ESTIMATOR")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Role != domain.RoleAdmin {
		t.Fatalf("stored role must win in the result, got %s", result.Role)
	}

	info, err := codec.Verify(result.Token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if info.Role != "ESTIMATOR" {
		t.Fatalf("token must carry the requested role, got %s", info.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubCredRepo()
	svc, _ := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "dave", "goodpass", domain.RoleScheduler); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(context.Background(), "dave", "badpass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// Unknown logins collapse to the same error as wrong passwords so the
// endpoint cannot be used to enumerate accounts.
func TestAuthService_Login_UnknownLogin(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubCredRepo())
	if _, err := svc.Login(context.Background(), "ghost", "pass", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
