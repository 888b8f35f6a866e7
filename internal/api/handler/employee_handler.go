package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee profiles.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Position     string `json:"position"`
	AccountLogin string `json:"account_login"`
}

// List handles GET .../employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        keyword  query  string  false  "Substring filter"
// @Param        sort     query  string  false  "Sort field, suffix :desc for descending"
// @Success      200  {array}  domain.Employee
// @Router       /admin/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Get handles GET .../employees/:id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Create handles POST .../employees.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), &domain.Employee{
		FullName:     req.FullName,
		Position:     req.Position,
		AccountLogin: req.AccountLogin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update handles PUT .../employees/:id.
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Update(c.Request().Context(), &domain.Employee{
		ID:           c.Param("id"),
		FullName:     req.FullName,
		Position:     req.Position,
		AccountLogin: req.AccountLogin,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE .../employees/:id.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
