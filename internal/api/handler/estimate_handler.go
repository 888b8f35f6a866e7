package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// EstimateHandler handles HTTP requests for cost estimate records.
type EstimateHandler struct {
	service ports.EstimateService
}

func NewEstimateHandler(service ports.EstimateService) *EstimateHandler {
	return &EstimateHandler{service: service}
}

type estimateRequest struct {
	ProjectID        string  `json:"project_id" validate:"required"`
	ExpenseItem      string  `json:"expense_item" validate:"required"`
	UnitsMeasurement string  `json:"units_measurement"`
	Amount           float64 `json:"amount" validate:"gte=0"`
	Price            float64 `json:"price" validate:"gte=0"`
	RecordDate       string  `json:"record_date" validate:"omitempty,datetime=2006-01-02"`
}

type estimateResponse struct {
	ID               string  `json:"id"`
	ProjectID        string  `json:"project_id"`
	ExpenseItem      string  `json:"expense_item"`
	UnitsMeasurement string  `json:"units_measurement"`
	Amount           float64 `json:"amount"`
	Price            float64 `json:"price"`
	RecordDate       string  `json:"record_date"`
}

func toEstimateResponse(e *domain.Estimate) estimateResponse {
	return estimateResponse{
		ID:               e.ID,
		ProjectID:        e.ProjectID,
		ExpenseItem:      e.ExpenseItem,
		UnitsMeasurement: e.UnitsMeasurement,
		Amount:           e.Amount,
		Price:            e.Price,
		RecordDate:       formatDate(e.RecordDate),
	}
}

func (r estimateRequest) toDomain(id string) (*domain.Estimate, error) {
	recordDate, err := parseDate(r.RecordDate)
	if err != nil {
		return nil, err
	}
	return &domain.Estimate{
		ID:               id,
		ProjectID:        r.ProjectID,
		ExpenseItem:      r.ExpenseItem,
		UnitsMeasurement: r.UnitsMeasurement,
		Amount:           r.Amount,
		Price:            r.Price,
		RecordDate:       recordDate,
	}, nil
}

// List handles GET .../estimates.
//
// @Summary      List estimate records
// @Tags         estimates
// @Produce      json
// @Param        keyword  query  string  false  "Substring filter"
// @Param        sort     query  string  false  "Sort field, suffix :desc for descending"
// @Success      200  {array}  estimateResponse
// @Router       /estimator/estimates [get]
func (h *EstimateHandler) List(c echo.Context) error {
	estimates, err := h.service.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	out := make([]estimateResponse, 0, len(estimates))
	for i := range estimates {
		out = append(out, toEstimateResponse(&estimates[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET .../estimates/:id.
func (h *EstimateHandler) Get(c echo.Context) error {
	estimate, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEstimateResponse(estimate))
}

// Create handles POST .../estimates.
func (h *EstimateHandler) Create(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	estimate, err := req.toDomain("")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.service.Create(c.Request().Context(), estimate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEstimateResponse(created))
}

// Update handles PUT .../estimates/:id.
func (h *EstimateHandler) Update(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	estimate, err := req.toDomain(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Update(c.Request().Context(), estimate); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE .../estimates/:id.
func (h *EstimateHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
