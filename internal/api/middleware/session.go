package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

// Context keys set by Session and consumed by Gate and the handlers.
const (
	ContextKeyLoading = "session_loading"
	ContextKeyUser    = "session_user"
)

// Session injects the current session snapshot into the request context so
// downstream middleware and handlers see one consistent view per request.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyLoading, sessions.Loading())
			if user := sessions.CurrentUser(); user != nil {
				c.Set(ContextKeyUser, user)
			}
			return next(c)
		}
	}
}
