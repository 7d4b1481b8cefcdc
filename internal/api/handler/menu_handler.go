package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/core/domain"
)

// MenuHandler serves the role-based navigation tree.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

type menuResponse struct {
	Role string            `json:"role"`
	Menu []domain.MenuItem `json:"menu"`
}

// Get handles GET /menu. The tree is recomputed from the effective role on
// every call and never persisted.
//
// @Summary      Navigation tree for the current role
// @Tags         menu
// @Produce      json
// @Success      200  {object}  menuResponse
// @Failure      401  {object}  map[string]string
// @Router       /menu [get]
func (h *MenuHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	menu := domain.BuildMenu(user.Role)
	if menu == nil {
		menu = []domain.MenuItem{}
	}
	return c.JSON(http.StatusOK, menuResponse{Role: user.Role, Menu: menu})
}
