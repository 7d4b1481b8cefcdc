package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spc-hr/hrms-gateway/internal/api/metrics"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
)

// SessionHandler exposes the session lifecycle over HTTP.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Login handles POST /session/login.
//
// @Summary      Authenticate with email and password
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResultResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  authResultResponse
// @Router       /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out := h.sessions.Login(c.Request().Context(), req.Email, req.Password, req.CompanyID)
	metrics.SessionLoginsTotal.WithLabelValues("password", loginResultLabel(out)).Inc()
	if !out.Success {
		return c.JSON(http.StatusUnauthorized, authResultResponse{Success: false, Message: out.Message})
	}
	return c.JSON(http.StatusOK, authResultResponse{Success: true})
}

// Register handles POST /session/register.
//
// @Summary      Register a company account
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResultResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  authResultResponse
// @Router       /session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Role:        req.Role,
	})
	metrics.SessionLoginsTotal.WithLabelValues("register", loginResultLabel(out)).Inc()
	if !out.Success {
		return c.JSON(http.StatusUnprocessableEntity, authResultResponse{Success: false, Message: out.Message})
	}
	return c.JSON(http.StatusCreated, authResultResponse{Success: true})
}

// GoogleLogin handles POST /session/google.
//
// @Summary      Authenticate with a federated Google credential
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      googleLoginRequest  true  "Federated credential"
// @Success      200   {object}  authResultResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  authResultResponse
// @Router       /session/google [post]
func (h *SessionHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out := h.sessions.GoogleLogin(c.Request().Context(), req.Credential)
	metrics.SessionLoginsTotal.WithLabelValues("google", loginResultLabel(out)).Inc()
	if !out.Success {
		return c.JSON(http.StatusUnauthorized, authResultResponse{Success: false, Message: out.Message})
	}
	return c.JSON(http.StatusOK, authResultResponse{Success: true})
}

// Status handles GET /session.
//
// @Summary      Current session snapshot
// @Tags         session
// @Produce      json
// @Success      200  {object}  ports.SessionStatus
// @Router       /session [get]
func (h *SessionHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessions.Status())
}

// Logout handles DELETE /session.
//
// @Summary      Destroy the current session
// @Tags         session
// @Success      204
// @Router       /session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// UpdateUser handles PUT /session/user.
//
// @Summary      Replace the session's user profile
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      domain.User  true  "Updated user"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /session/user [put]
func (h *SessionHandler) UpdateUser(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.sessions.UpdateUser(c.Request().Context(), &user); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetTheme handles PUT /session/theme.
//
// @Summary      Persist the theme preference
// @Tags         session
// @Accept       json
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /session/theme [put]
func (h *SessionHandler) SetTheme(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.sessions.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func loginResultLabel(out ports.AuthOutcome) string {
	if out.Success {
		return "success"
	}
	return "failure"
}
