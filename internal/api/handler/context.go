package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/api/middleware"
	"github.com/electroleed/project-office/internal/security"
)

// currentPrincipal extracts the principal installed by the request gate.
// Handlers behind the authorization policy can rely on it being present;
// the 401 here only fires if a route is wired outside the policy by mistake.
func currentPrincipal(c echo.Context) (*security.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}

// dateFormat is the wire format for all date fields.
const dateFormat = "2006-01-02"

// parseDate converts an optional yyyy-mm-dd string; empty input yields the
// zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateFormat, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
