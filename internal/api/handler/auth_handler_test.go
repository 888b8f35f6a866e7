package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

type stubAuthService struct {
	loginResult    *ports.LoginResult
	loginErr       error
	registerResult *ports.LoginResult
	registerErr    error
}

func (s *stubAuthService) Login(context.Context, string, string, string) (*ports.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Register(context.Context, string, string, domain.Role) (*ports.LoginResult, error) {
	return s.registerResult, s.registerErr
}

type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (s *stubThrottle) Blocked(context.Context, string) (bool, error) { return s.blocked, nil }
func (s *stubThrottle) RecordFailure(context.Context, string) error {
	s.failures++
	return nil
}
func (s *stubThrottle) Reset(context.Context, string) error {
	s.resets++
	return nil
}

func postJSON(t *testing.T, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	throttle := &stubThrottle{}
	h := NewAuthHandler(&stubAuthService{
		loginResult: &ports.LoginResult{Token: "header.payload.sig", Role: domain.RoleAdmin},
	}, throttle)

	rec := postJSON(t, h.Login, "/auth/login", `{"login":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["jwt-token"] != "header.payload.sig" || body["role"] != "ADMIN" {
		t.Fatalf("unexpected body: %v", body)
	}

	cookie := findCookie(t, rec, "jwt-token")
	if cookie.Value != "header.payload.sig" || !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if throttle.resets != 1 {
		t.Fatalf("throttle not reset on success")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	throttle := &stubThrottle{}
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, throttle)

	rec := postJSON(t, h.Login, "/auth/login", `{"login":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "Неверные учетные данные" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
	if throttle.failures != 1 {
		t.Fatalf("failed attempt not recorded")
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{blocked: true})

	rec := postJSON(t, h.Login, "/auth/login", `{"login":"alice","password":"secret"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthHandler_Login_NilThrottle(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginResult: &ports.LoginResult{Token: "t", Role: domain.RoleEstimator},
	}, nil)

	rec := postJSON(t, h.Login, "/auth/login", `{"login":"alice","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerResult: &ports.LoginResult{Token: "t", Role: domain.RoleScheduler},
	}, nil)

	rec := postJSON(t, h.Register, "/auth/register", `{"login":"carol","password":"secret","role":"SCHEDULER"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if cookie := findCookie(t, rec, "jwt-token"); cookie.Value != "t" {
		t.Fatalf("token cookie not set")
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists}, nil)

	rec := postJSON(t, h.Register, "/auth/register", `{"login":"carol","password":"secret","role":"ADMIN"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "Пользователь с таким логином уже существует" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, nil)

	rec := postJSON(t, h.Register, "/auth/register", `{"login":"carol"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
