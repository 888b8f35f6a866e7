package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/api/metrics"
	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/security"
)

// Verdict is the outcome of evaluating a path/principal pair.
type Verdict int

const (
	Allow Verdict = iota
	DenyUnauthorized
	DenyForbidden
)

// Rule maps a path prefix to an access requirement. Public short-circuits
// the check; an empty Role with Public=false means any authenticated
// principal is accepted.
type Rule struct {
	Prefix string
	Role   domain.Role
	Public bool
}

// Policy is the fixed, process-wide authorization table. It is established
// at startup and never mutated; evaluation is a pure function over
// (path, principal).
type Policy struct {
	rules []Rule
}

func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy returns the application's route-to-role table.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Prefix: "/favicon.ico", Public: true},
		{Prefix: "/icons/", Public: true},
		{Prefix: "/static/", Public: true},
		{Prefix: "/web/auth/login", Public: true},
		{Prefix: "/web/auth/about_author", Public: true},
		{Prefix: "/auth/", Public: true},
		{Prefix: "/health", Public: true},
		{Prefix: "/metrics", Public: true},
		{Prefix: "/swagger/", Public: true},
		{Prefix: "/admin/", Role: domain.RoleAdmin},
		{Prefix: "/estimator/", Role: domain.RoleEstimator},
		{Prefix: "/scheduler/", Role: domain.RoleScheduler},
		{Prefix: "/project_manager/", Role: domain.RoleProjectManager},
		{Prefix: "/project_member/", Role: domain.RoleProjectMember},
		{Prefix: "/userPage/"},
	})
}

// Evaluate matches path against the rule table (longest matching prefix
// wins) and decides whether the principal may proceed. Paths matching no
// rule are public, mirroring the original route configuration.
func (p *Policy) Evaluate(path string, principal *security.Principal) Verdict {
	var matched *Rule
	for i := range p.rules {
		r := &p.rules[i]
		if !strings.HasPrefix(path, r.Prefix) {
			continue
		}
		if matched == nil || len(r.Prefix) > len(matched.Prefix) {
			matched = r
		}
	}

	switch {
	case matched == nil, matched.Public:
		return Allow
	case principal == nil:
		return DenyUnauthorized
	case matched.Role != "" && !principal.HasRole(matched.Role):
		return DenyForbidden
	default:
		return Allow
	}
}

// Enforce rejects requests the policy denies, before the handler executes.
func Enforce(policy *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch policy.Evaluate(c.Request().URL.Path, Principal(c)) {
			case DenyUnauthorized:
				metrics.AuthzDenialsTotal.WithLabelValues("unauthorized").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			case DenyForbidden:
				metrics.AuthzDenialsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
