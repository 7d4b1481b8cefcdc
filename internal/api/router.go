package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/spc-hr/hrms-gateway/internal/api/handler"
	"github.com/spc-hr/hrms-gateway/internal/api/middleware"
	"github.com/spc-hr/hrms-gateway/internal/core/domain"
	"github.com/spc-hr/hrms-gateway/internal/core/ports"
	"github.com/spc-hr/hrms-gateway/internal/infrastructure/upstream"
)

// Deps carries everything the router wires into handlers and middleware.
type Deps struct {
	Sessions      ports.SessionService
	Notifications ports.NotificationService
	Upstream      *upstream.Client
	Redis         *redis.Client // nil when the file session store is in use
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hrms"))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	menuHandler := handler.NewMenuHandler()
	proxyHandler := handler.NewProxyHandler(deps.Upstream)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Upstream, deps.Redis)

	session := middleware.Session(deps.Sessions)

	// --- Session lifecycle (no gate: these establish or inspect the session) ---
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/register", sessionHandler.Register)
	e.POST("/session/google", sessionHandler.GoogleLogin)
	e.GET("/session", sessionHandler.Status)
	e.DELETE("/session", sessionHandler.Logout)

	authenticated := e.Group("", session, middleware.Gate(nil, false))
	authenticated.PUT("/session/user", sessionHandler.UpdateUser)
	authenticated.PUT("/session/theme", sessionHandler.SetTheme)

	// --- Menu and notifications: any authenticated role ---
	authenticated.GET("/menu", menuHandler.Get)
	authenticated.GET("/notifications", notificationHandler.List)
	authenticated.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
	authenticated.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	authenticated.DELETE("/notifications/:id", notificationHandler.Remove)

	// --- Role-guarded proxy to the HRMS backend ---
	staffRoles := []string{domain.RoleCompanyAdmin, domain.RoleAdmin, domain.RoleHR}
	managerRoles := []string{domain.RoleCompanyAdmin, domain.RoleAdmin, domain.RoleManager}
	adminRoles := []string{domain.RoleCompanyAdmin, domain.RoleAdmin}
	employeeRoles := []string{domain.RoleEmployee}

	registerProxy(e, session, proxyHandler, "/api/employees", staffRoles, false)
	registerProxy(e, session, proxyHandler, "/api/departments", staffRoles, false)
	registerProxy(e, session, proxyHandler, "/api/announcements", staffRoles, false)
	registerProxy(e, session, proxyHandler, "/api/email-templates", staffRoles, false)
	registerProxy(e, session, proxyHandler, "/api/projects", managerRoles, false)
	registerProxy(e, session, proxyHandler, "/api/activity", adminRoles, false)
	registerProxy(e, session, proxyHandler, "/api/employee", employeeRoles, true)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// registerProxy mounts a gated catch-all for one backend resource prefix.
func registerProxy(e *echo.Echo, session echo.MiddlewareFunc, h *handler.ProxyHandler, prefix string, roles []string, requireProject bool) {
	g := e.Group(prefix, session, middleware.Gate(roles, requireProject))
	g.Any("", h.Forward)
	g.Any("/*", h.Forward)
}
