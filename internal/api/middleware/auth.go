package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/whiskerworks/cat-registry/internal/api/metrics"
	"github.com/whiskerworks/cat-registry/internal/api/policy"
	"github.com/whiskerworks/cat-registry/internal/pkg/token"
)

// PrincipalKey is the echo context key under which Auth stores the verified
// principal. Downstream consumers read it through handler.Principal and
// never re-derive identity from raw headers.
const PrincipalKey = "principal"

// Auth is the authentication gate. Public operations pass untouched — no
// token inspection at all. Protected operations must carry a valid
// "Bearer <token>" header; every failure mode is a 401.
func Auth(verifier *token.Verifier, policies *policy.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			routePath := c.Path()
			pol := policies.Resolve(
				policy.OperationID(c.Request().Method, routePath),
				policy.ControllerID(routePath),
			)
			if pol.Public {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.GateDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GateDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.GateDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, claims.Principal())
			return next(c)
		}
	}
}
