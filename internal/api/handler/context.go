package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimw "github.com/spc-hr/hrms-gateway/internal/api/middleware"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// ctxUser extracts the user injected by the Session middleware. Presence
// proves both middlewares ran; handlers behind a Gate can rely on it, but the
// fast-fail keeps a miswired route from dereferencing nil.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(apimw.ContextKeyUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return user, nil
}
