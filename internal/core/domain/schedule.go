package domain

import (
	"errors"
	"time"
)

// TaskStatus is the lifecycle state of a scheduled task.
type TaskStatus string

const (
	TaskPlanned    TaskStatus = "planned"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

var ErrScheduleNotFound = errors.New("schedule task not found")

// ScheduleTask is one work-schedule entry assigning an employee to a task
// within a project.
type ScheduleTask struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	EmployeeID string     `json:"employee_id,omitempty"`
	Task       string     `json:"task"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Status     TaskStatus `json:"status"`
}
