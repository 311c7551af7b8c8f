package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/PrandiF/gevp-back/internal/core/ports"
)

// actor returns the authenticated username injected by the Auth middleware.
// Empty on unauthenticated routes.
func actor(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}

// pageParams reads the page/pageSize query parameters. Zero values let the
// service apply its per-resource defaults and cap.
func pageParams(c echo.Context) ports.ListInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return ports.ListInput{Page: page, PageSize: size}
}
