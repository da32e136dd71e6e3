package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/api/handler"
	"github.com/sweetshop/inventory-api/internal/api/middleware"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// Dependencies carries everything the router needs, wired by main.
type Dependencies struct {
	Logger      zerolog.Logger
	Tokens      ports.TokenService
	Auth        ports.AuthService
	Sweets      ports.SweetService
	StorePing   handler.Pinger // nil for the memory backend
	CORSOrigins []string
	// Metrics overrides the Prometheus registry for the HTTP middleware.
	// Nil means the default registry; tests pass their own so building
	// several routers does not double-register collectors.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
	}))
	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "sweetshop",
		Registerer: registerer,
	}))

	authHandler := handler.NewAuthHandler(deps.Auth)
	sweetHandler := handler.NewSweetHandler(deps.Sweets)
	healthHandler := handler.NewHealthHandler(deps.StorePing)
	authRequired := middleware.Auth(deps.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Sweet Shop API is running!"})
	})
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Catalog routes (authenticated) ---
	sweets := e.Group("/api/sweets", authRequired)
	sweets.POST("", sweetHandler.Add)
	sweets.GET("", sweetHandler.List)
	sweets.GET("/search", sweetHandler.Search)
	sweets.PUT("/:id", sweetHandler.Update)
	sweets.DELETE("/:id", sweetHandler.Delete, adminOnly)
	sweets.POST("/:id/purchase", sweetHandler.Purchase)
	sweets.POST("/:id/restock", sweetHandler.Restock, adminOnly)

	return e
}
