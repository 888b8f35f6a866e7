package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is the staff profile linked 1:1 to a user account. Deleting the
// account cascades to the profile.
type Employee struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	AccountLogin string `json:"account_login,omitempty"`
}
