package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name          string  `json:"name" validate:"required"`
	Client        string  `json:"client"`
	StartDate     string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	ResponsibleID string  `json:"responsible_id"`
	Budget        float64 `json:"budget" validate:"gte=0"`
}

type projectResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Client        string  `json:"client"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ResponsibleID string  `json:"responsible_id,omitempty"`
	Budget        float64 `json:"budget"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Client:        p.Client,
		StartDate:     formatDate(p.StartDate),
		EndDate:       formatDate(p.EndDate),
		ResponsibleID: p.ResponsibleID,
		Budget:        p.Budget,
	}
}

func (r projectRequest) toDomain(id string) (*domain.Project, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Project{
		ID:            id,
		Name:          r.Name,
		Client:        r.Client,
		StartDate:     start,
		EndDate:       end,
		ResponsibleID: r.ResponsibleID,
		Budget:        r.Budget,
	}, nil
}

// List handles GET .../projects.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        keyword  query  string  false  "Substring filter"
// @Param        sort     query  string  false  "Sort field, suffix :desc for descending"
// @Success      200  {array}  projectResponse
// @Router       /admin/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET .../projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// Create handles POST .../projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := req.toDomain("")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.service.Create(c.Request().Context(), project)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProjectResponse(created))
}

// Update handles PUT .../projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := req.toDomain(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Update(c.Request().Context(), project); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE .../projects/:id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
