package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/havenly/havenly-api/internal/api/handler"
	"github.com/havenly/havenly-api/internal/api/middleware"
	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
	"github.com/havenly/havenly-api/internal/core/service"
	"github.com/havenly/havenly-api/internal/infrastructure/config"
	mongodb "github.com/havenly/havenly-api/internal/infrastructure/db/mongo"
	redisdb "github.com/havenly/havenly-api/internal/infrastructure/db/redis"
	"github.com/havenly/havenly-api/internal/infrastructure/http/handlers"
	"github.com/havenly/havenly-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is passed in because its worker pool is owned (started
// and stopped) by the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, recorder ports.ActivityRecorder, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("havenly"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	revocations := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revocations, recorder, cfg.JWTSecret, cfg.TokenTTL, log)
	propertyService := service.NewPropertyService(propertyRepo, roomRepo, recorder, log)
	roomService := service.NewRoomService(roomRepo, propertyRepo, recorder, log)
	adminService := service.NewAdminService(userRepo, propertyRepo, roomRepo, activityRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	roomHandler := handler.NewRoomHandler(roomService)
	adminHandler := handler.NewAdminHandler(adminService, propertyService)

	authRequired := middleware.Auth(authService, revocations)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.POST("/logout", authHandler.Logout, authRequired)

	// --- Landlord routes ---
	landlord := e.Group("/landlord", authRequired, middleware.RBAC(domain.RoleLandlord))
	landlord.GET("/properties/", propertyHandler.List)
	landlord.GET("/properties", propertyHandler.List)
	landlord.POST("/properties", propertyHandler.Create)
	landlord.GET("/properties/rooms", roomHandler.List) // all rooms across the portfolio
	landlord.GET("/properties/:property_id", propertyHandler.Get)
	landlord.PUT("/properties/:property_id", propertyHandler.Update)
	landlord.DELETE("/properties/:property_id", propertyHandler.Delete)
	landlord.GET("/properties/:property_id/rooms", roomHandler.List)
	landlord.POST("/properties/:property_id/rooms", roomHandler.Create)
	landlord.GET("/properties/:property_id/rooms/:room_id", roomHandler.Get)
	landlord.PUT("/properties/:property_id/rooms/:room_id", roomHandler.Update)

	// --- Tenant routes ---
	tenant := e.Group("/tenant", authRequired, middleware.RBAC(domain.RoleTenant))
	tenant.GET("/rooms", roomHandler.List)
	tenant.GET("/rooms/:room_id", roomHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/admin", authRequired, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/properties", adminHandler.ListProperties)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/activity", adminHandler.Activity)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
