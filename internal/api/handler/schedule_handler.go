package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for work-schedule tasks.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

type scheduleRequest struct {
	ProjectID  string `json:"project_id" validate:"required"`
	EmployeeID string `json:"employee_id"`
	Task       string `json:"task" validate:"required"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"omitempty,oneof=planned in_progress done"`
}

type scheduleResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Task       string `json:"task"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
}

func toScheduleResponse(t *domain.ScheduleTask) scheduleResponse {
	return scheduleResponse{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		EmployeeID: t.EmployeeID,
		Task:       t.Task,
		StartDate:  formatDate(t.StartDate),
		EndDate:    formatDate(t.EndDate),
		Status:     string(t.Status),
	}
}

func (r scheduleRequest) toDomain(id string) (*domain.ScheduleTask, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.ScheduleTask{
		ID:         id,
		ProjectID:  r.ProjectID,
		EmployeeID: r.EmployeeID,
		Task:       r.Task,
		StartDate:  start,
		EndDate:    end,
		Status:     domain.TaskStatus(r.Status),
	}, nil
}

// List handles GET .../schedules.
//
// @Summary      List schedule tasks
// @Tags         schedules
// @Produce      json
// @Param        keyword  query  string  false  "Substring filter"
// @Param        sort     query  string  false  "Sort field, suffix :desc for descending"
// @Success      200  {array}  scheduleResponse
// @Router       /scheduler/schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	tasks, err := h.service.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	out := make([]scheduleResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toScheduleResponse(&tasks[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET .../schedules/:id.
func (h *ScheduleHandler) Get(c echo.Context) error {
	task, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleResponse(task))
}

// Create handles POST .../schedules.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := req.toDomain("")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.service.Create(c.Request().Context(), task)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toScheduleResponse(created))
}

// Update handles PUT .../schedules/:id.
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := req.toDomain(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Update(c.Request().Context(), task); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE .../schedules/:id.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
