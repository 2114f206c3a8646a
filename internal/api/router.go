package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/priyanaka6261/property-portal-backend/internal/api/handler"
	"github.com/priyanaka6261/property-portal-backend/internal/api/middleware"
	"github.com/priyanaka6261/property-portal-backend/internal/core/domain"
	"github.com/priyanaka6261/property-portal-backend/internal/core/service"
	mongodb "github.com/priyanaka6261/property-portal-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/priyanaka6261/property-portal-backend/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to assemble the service graph.
type Options struct {
	Mongo      *mongo.Database
	StatsCache *redisdb.StatsCache
	JWTSecret  string
	TokenTTL   time.Duration
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("property_portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	propertyRepo := mongodb.NewPropertyRepository(opts.Mongo)

	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	propertyService := service.NewPropertyService(propertyRepo, opts.StatsCache, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	authRequired := middleware.Auth(authService)
	agentOrAdmin := middleware.RequireRole(domain.RoleAgent, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Property routes ---
	properties := e.Group("/properties")
	properties.GET("/search", propertyHandler.Search) // public
	properties.GET("/stats", propertyHandler.Stats)   // public
	properties.POST("", propertyHandler.Create, authRequired, agentOrAdmin)
	properties.GET("", propertyHandler.List, authRequired)
	properties.GET("/my-properties", propertyHandler.ListMine, authRequired)
	properties.GET("/:id", propertyHandler.Get, authRequired)
	properties.PUT("/:id", propertyHandler.Update, authRequired)
	properties.DELETE("/:id", propertyHandler.Delete, authRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.StatsCache.Client())

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
