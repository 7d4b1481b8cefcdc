package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/api/metrics"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// Gate enforces the protected-route checks in their fixed order: loading,
// authentication, role membership, project assignment. Pass nil allowedRoles
// to require authentication only.
func Gate(allowedRoles []string, requireProjectAssignment bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			loading, _ := c.Get(ContextKeyLoading).(bool)
			user, _ := c.Get(ContextKeyUser).(*domain.User)

			res := domain.Decide(domain.GateInput{
				Loading:                  loading,
				User:                     user,
				AllowedRoles:             allowedRoles,
				RequireProjectAssignment: requireProjectAssignment,
				RequestedLocation:        c.Request().URL.RequestURI(),
			})
			metrics.GateDecisionsTotal.WithLabelValues(res.Decision.String()).Inc()

			switch res.Decision {
			case domain.DecideLoading:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"error": "session initializing",
				})
			case domain.DecideRedirectToLogin:
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":    "authentication required",
					"redirect": res.RedirectTo,
				})
			case domain.DecideForbidden:
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": res.Reason,
				})
			case domain.DecideRedirectNoProject:
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "no project assignment",
					"code":  "no_project",
				})
			}

			return next(c)
		}
	}
}
