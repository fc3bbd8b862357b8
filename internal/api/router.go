package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/barangayhub/admin-api/docs"
	"github.com/barangayhub/admin-api/internal/api/handler"
	"github.com/barangayhub/admin-api/internal/api/middleware"
	"github.com/barangayhub/admin-api/internal/core/domain"
	"github.com/barangayhub/admin-api/internal/core/ports"
	"github.com/barangayhub/admin-api/internal/core/service"
	"github.com/barangayhub/admin-api/internal/infrastructure/config"
	mongostore "github.com/barangayhub/admin-api/internal/infrastructure/db/mongo"
	redisstore "github.com/barangayhub/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Protected routes are registered for every verb and filtered by the
// AllowMethods middleware, so the gate always runs in the order
// session, role, method, body validation.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("adminpanel"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	sessions := redisstore.NewSessionStore(rdb, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL)
	accountService := service.NewAccountService(userRepo, audit, log)

	sessionHandler := handler.NewSessionHandler(authService, cfg.SessionTTL)
	userHandler := handler.NewUserHandler(accountService)

	requireSession := middleware.RequireSession(authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Session routes ---
	e.POST("/api/login", sessionHandler.Login)
	e.Any("/api/logout", sessionHandler.Logout,
		middleware.AllowMethods(http.MethodGet, http.MethodPost))
	e.GET("/api/check-session", sessionHandler.Check)

	// --- Account management (admin only) ---
	e.Any("/api/users", userHandler.List,
		requireSession, adminOnly, middleware.AllowMethods(http.MethodGet))
	e.Any("/api/users/create", userHandler.Create,
		requireSession, adminOnly, middleware.AllowMethods(http.MethodPost))
	e.Any("/api/users/update", userHandler.Update,
		requireSession, adminOnly, middleware.AllowMethods(http.MethodPost, http.MethodPut))
	e.Any("/api/users/delete", userHandler.Delete,
		requireSession, adminOnly, middleware.AllowMethods(http.MethodPost, http.MethodDelete))
	e.Any("/api/users/reset-password", userHandler.ResetPassword,
		requireSession, adminOnly, middleware.AllowMethods(http.MethodPost))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
