package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/metrics"
	"github.com/whiskerworks/cat-registry/internal/api/policy"
	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// RBAC is the authorization gate, ordered after Auth. Matching is exact:
// admin does not implicitly satisfy a user-only policy, nor vice versa.
func RBAC(policies *policy.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			routePath := c.Path()
			pol := policies.Resolve(
				policy.OperationID(c.Request().Method, routePath),
				policy.ControllerID(routePath),
			)
			if pol.Public || pol.RequiredRole == "" {
				return next(c)
			}

			p, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				// Auth did not run or did not attach a principal; treat as
				// unauthenticated rather than leak a 403.
				metrics.GateDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			if p.Role != pol.RequiredRole {
				metrics.GateDenialsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			return next(c)
		}
	}
}
