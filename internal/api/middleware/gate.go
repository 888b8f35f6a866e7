package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/api/metrics"
	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/security"
)

// TokenCookie is the cookie clients store the session token in.
const TokenCookie = "jwt-token"

const principalKey = "principal"

// Gate authenticates each request exactly once, before authorization and
// before any handler. A missing token lets the request proceed
// unauthenticated; the policy rejects it later if the route needs a role.
// A token that fails verification short-circuits the request with a client
// error; no principal is installed and no handler runs.
func Gate(codec *security.Codec, resolver *security.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request())
			if token == "" {
				return next(c)
			}

			info, err := codec.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid JWT Token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			// Install only if absent: re-running the gate on a request that
			// already carries a principal must not overwrite it.
			if c.Get(principalKey) == nil {
				principal, err := resolver.Resolve(c.Request().Context(), info.Login)
				if err != nil {
					if errors.Is(err, domain.ErrUserNotFound) {
						return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
					}
					return err
				}
				c.Set(principalKey, principal)
			}

			return next(c)
		}
	}
}

// Principal returns the authenticated principal installed by the Gate, or
// nil when the request is unauthenticated.
func Principal(c echo.Context) *security.Principal {
	p, _ := c.Get(principalKey).(*security.Principal)
	return p
}

// extractToken pulls the session token from the jwt-token cookie, falling
// back to an Authorization: Bearer header.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
