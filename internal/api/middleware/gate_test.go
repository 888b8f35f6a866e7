package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
	"github.com/electroleed/project-office/internal/security"
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

func (r *stubCredRepo) Create(context.Context, *domain.Credential) error { return nil }
func (r *stubCredRepo) Update(context.Context, *domain.Credential) error { return nil }
func (r *stubCredRepo) Delete(context.Context, string) error             { return nil }

func newGateFixture(t *testing.T) (*security.Codec, echo.MiddlewareFunc) {
	t.Helper()
	codec, err := security.NewCodec("secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	repo := &stubCredRepo{creds: map[string]*domain.Credential{
		"alice": {Login: "alice", PasswordHash: "x", Role: domain.RoleAdmin},
	}}
	return codec, Gate(codec, security.NewResolver(repo))
}

func invokeGate(t *testing.T, gate echo.MiddlewareFunc, decorate func(*http.Request), seed *security.Principal) (*security.Principal, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/userPage/info", nil)
	if decorate != nil {
		decorate(req)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	if seed != nil {
		c.Set(principalKey, seed)
	}

	called := false
	var installed *security.Principal
	err := gate(func(c echo.Context) error {
		called = true
		installed = Principal(c)
		return nil
	})(c)
	return installed, called, err
}

func TestGate_NoTokenProceedsUnauthenticated(t *testing.T) {
	_, gate := newGateFixture(t)
	principal, called, err := invokeGate(t, gate, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("handler not called")
	}
	if principal != nil {
		t.Fatalf("expected no principal, got %+v", principal)
	}
}

func TestGate_CookieTokenInstallsStoredRole(t *testing.T) {
	codec, gate := newGateFixture(t)

	// The token claims a different role than the account holds; the
	// installed principal must reflect the stored one.
	token, err := codec.Issue("alice", "ESTIMATOR")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	principal, called, err := invokeGate(t, gate, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || principal == nil {
		t.Fatalf("handler not reached with principal")
	}
	if principal.Login != "alice" || principal.Role != domain.RoleAdmin {
		t.Fatalf("principal must carry the stored role, got %+v", principal)
	}
}

func TestGate_BearerFallback(t *testing.T) {
	codec, gate := newGateFixture(t)
	token, _ := codec.Issue("alice", "ADMIN")

	principal, _, err := invokeGate(t, gate, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal == nil || principal.Login != "alice" {
		t.Fatalf("bearer token not honored: %+v", principal)
	}
}

func TestGate_InvalidTokenShortCircuits(t *testing.T) {
	_, gate := newGateFixture(t)

	_, called, err := invokeGate(t, gate, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})
	}, nil)
	if called {
		t.Fatalf("handler must not run on invalid token")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Invalid JWT Token" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestGate_UnknownAccountUnauthorized(t *testing.T) {
	codec, gate := newGateFixture(t)
	token, _ := codec.Issue("ghost", "ADMIN")

	_, called, err := invokeGate(t, gate, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}, nil)
	if called {
		t.Fatalf("handler must not run for a deleted account")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestGate_ExistingPrincipalNotOverwritten(t *testing.T) {
	codec, gate := newGateFixture(t)
	token, _ := codec.Issue("alice", "ADMIN")

	seed := security.NewPrincipal("preinstalled", domain.RoleScheduler)
	principal, _, err := invokeGate(t, gate, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	}, seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal != seed {
		t.Fatalf("existing principal overwritten: %+v", principal)
	}
}
