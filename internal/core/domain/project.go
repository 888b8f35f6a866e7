package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a construction project with a responsible employee and budget.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Client        string    `json:"client"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ResponsibleID string    `json:"responsible_id,omitempty"`
	Budget        float64   `json:"budget"`
}
