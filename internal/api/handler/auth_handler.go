package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/api/metrics"
	"github.com/electroleed/project-office/internal/api/middleware"
	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// LoginThrottle limits failed login attempts per account. A nil throttle
// disables the limit.
type LoginThrottle interface {
	Blocked(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}

type AuthHandler struct {
	authService ports.AuthService
	throttle    LoginThrottle
}

func NewAuthHandler(authService ports.AuthService, throttle LoginThrottle) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"jwt-token"`
	Role  string `json:"role"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	ctx := c.Request().Context()
	if h.throttle != nil && req.Login != "" {
		blocked, err := h.throttle.Blocked(ctx, req.Login)
		if err != nil {
			return err
		}
		if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
		}
	}

	result, err := h.authService.Login(ctx, req.Login, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			if h.throttle != nil && req.Login != "" {
				_ = h.throttle.RecordFailure(ctx, req.Login)
			}
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			// One message for both unknown login and wrong password, so the
			// endpoint cannot be used to enumerate accounts.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Неверные учетные данные"})
		}
		return err
	}

	if h.throttle != nil {
		_ = h.throttle.Reset(ctx, req.Login)
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	setTokenCookie(c, result.Token)
	return c.JSON(http.StatusOK, tokenResponse{Token: result.Token, Role: string(result.Role)})
}

// Register creates a new user account and returns a session token.
//
// @Summary      Register a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), req.Login, req.Password, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": "Пользователь с таким логином уже существует"})
		case errors.Is(err, domain.ErrInvalidRole), errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	setTokenCookie(c, result.Token)
	return c.JSON(http.StatusCreated, tokenResponse{Token: result.Token, Role: string(result.Role)})
}

// LoginPage serves the public login page placeholder.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "login"})
}

// AboutAuthor serves the public about page placeholder.
func (h *AuthHandler) AboutAuthor(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"page": "about_author"})
}

func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
