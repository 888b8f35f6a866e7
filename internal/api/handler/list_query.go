package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/electroleed/project-office/internal/core/ports"
)

// listOptions reads the shared keyword/sort query parameters. The sort value
// is "field", "field:asc" or "field:desc".
func listOptions(c echo.Context) ports.ListOptions {
	opts := ports.ListOptions{Keyword: c.QueryParam("keyword")}

	sort := c.QueryParam("sort")
	switch {
	case strings.HasSuffix(sort, ":desc"):
		opts.SortField = strings.TrimSuffix(sort, ":desc")
		opts.SortDesc = true
	case strings.HasSuffix(sort, ":asc"):
		opts.SortField = strings.TrimSuffix(sort, ":asc")
	default:
		opts.SortField = sort
	}
	return opts
}
