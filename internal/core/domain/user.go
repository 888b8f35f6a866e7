package domain

import "errors"

// Role is the single access level granted to a user account.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleEstimator      Role = "ESTIMATOR"
	RoleScheduler      Role = "SCHEDULER"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleProjectMember  Role = "PROJECT_MEMBER"
)

// Roles lists every valid role, in display order.
var Roles = []Role{RoleAdmin, RoleEstimator, RoleScheduler, RoleProjectManager, RoleProjectMember}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrTokenInvalid = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ParseRole converts a raw string into a Role, rejecting anything outside
// the five fixed values.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Authority returns the granted-authority form of the role. A user has
// exactly one role and therefore exactly one authority.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// Credential is the stored account record. PasswordHash never leaves the
// credential store boundary in serialized form.
type Credential struct {
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
