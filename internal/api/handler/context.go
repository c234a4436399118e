package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/middleware"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// Principal extracts the principal injected by the Auth middleware. This is
// the single canonical channel for caller identity: handlers never parse
// headers or tokens themselves. A missing principal on a protected route
// means the middleware chain did not run — reject with 401.
func Principal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
