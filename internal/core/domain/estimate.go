package domain

import (
	"errors"
	"time"
)

var ErrEstimateNotFound = errors.New("estimate not found")

// Estimate is a single cost line recorded against a project.
type Estimate struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	ExpenseItem      string    `json:"expense_item"`
	UnitsMeasurement string    `json:"units_measurement"`
	Amount           float64   `json:"amount"`
	Price            float64   `json:"price"`
	RecordDate       time.Time `json:"record_date"`
}
