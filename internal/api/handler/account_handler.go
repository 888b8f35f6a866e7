package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/ports"
)

// AccountHandler exposes the administrative account surface and the
// current-user info endpoint.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type accountResponse struct {
	Login string `json:"login"`
	Role  string `json:"role"`
}

type updateAccountRequest struct {
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN ESTIMATOR SCHEDULER PROJECT_MANAGER PROJECT_MEMBER"`
}

// List handles GET /admin/users.
//
// @Summary      List user accounts
// @Tags         accounts
// @Produce      json
// @Param        keyword  query  string  false  "Substring filter"
// @Param        sort     query  string  false  "Sort field, suffix :desc for descending"
// @Success      200  {array}  accountResponse
// @Router       /admin/users [get]
func (h *AccountHandler) List(c echo.Context) error {
	creds, err := h.accounts.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	out := make([]accountResponse, 0, len(creds))
	for _, cr := range creds {
		out = append(out, accountResponse{Login: cr.Login, Role: string(cr.Role)})
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /admin/users/:login.
func (h *AccountHandler) Get(c echo.Context) error {
	cred, err := h.accounts.Get(c.Request().Context(), c.Param("login"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Login: cred.Login, Role: string(cred.Role)})
}

// Update handles PUT /admin/users/:login, changing password and/or role.
func (h *AccountHandler) Update(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cred, err := h.accounts.Update(c.Request().Context(), c.Param("login"), ports.AccountUpdate{
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Login: cred.Login, Role: string(cred.Role)})
}

// Delete handles DELETE /admin/users/:login. Removing an account cascades
// to its employee profile.
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("login")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Info handles GET /userPage/info, returning the authenticated user's own record.
func (h *AccountHandler) Info(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}
	cred, err := h.accounts.Get(c.Request().Context(), principal.Login)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accountResponse{Login: cred.Login, Role: string(cred.Role)})
}
