package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PrandiF/gevp-back/internal/api/handler"
	"github.com/PrandiF/gevp-back/internal/api/middleware"
	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
	"github.com/PrandiF/gevp-back/internal/core/service"
	mongodb "github.com/PrandiF/gevp-back/internal/infrastructure/db/mongo"
	redisdb "github.com/PrandiF/gevp-back/internal/infrastructure/db/redis"
	"github.com/PrandiF/gevp-back/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("gevp"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(db)

	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	eventService := service.NewEventService(eventRepo, recorder, log)
	scheduleService := service.NewScheduleService(scheduleRepo, recorder, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	authRequired := middleware.Auth(authService)
	staffOnly := middleware.RBAC(domain.RoleStaff)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.LoginLimit,
		time.Duration(cfg.Throttle.WindowSecs)*time.Second)

	// --- User routes ---
	users := e.Group("/api/usuario")
	users.POST("/login", authHandler.Login, middleware.LoginThrottle(throttle, log))
	users.POST("/logout", authHandler.Logout)
	users.GET("", authHandler.ListUsers, authRequired, staffOnly)
	users.DELETE("/:id", authHandler.DeleteUser, authRequired, staffOnly)

	// --- Event routes (one-off reservations) ---
	events := e.Group("/api/evento", authRequired)
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)
	events.GET("/filter", eventHandler.Filter)
	events.POST("/disponibilidad", eventHandler.CheckAvailability)
	events.GET("/:id", eventHandler.Get)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	// --- Schedule routes (recurring weekly slots) ---
	schedules := e.Group("/api/horario", authRequired)
	schedules.POST("", scheduleHandler.Create)
	schedules.GET("", scheduleHandler.List)
	schedules.GET("/filter", scheduleHandler.Filter)
	schedules.POST("/disponibilidad", scheduleHandler.CheckAvailability)
	schedules.GET("/:id", scheduleHandler.Get)
	schedules.PUT("/:id", scheduleHandler.Update)
	schedules.DELETE("/:id", scheduleHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
