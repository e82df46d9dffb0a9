package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/timekeeper/inventory-system/internal/api/handler"
	"github.com/timekeeper/inventory-system/internal/api/middleware"
	"github.com/timekeeper/inventory-system/internal/core/domain"
)

// Deps carries the constructed services and transport helpers the router
// wires together. Building the router from injected components keeps the
// HTTP surface testable without a database.
type Deps struct {
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	ProductHandler   *handler.ProductHandler
	CategoryHandler  *handler.CategoryHandler
	BrandHandler     *handler.BrandHandler
	DashboardHandler *handler.DashboardHandler
	Health           *handler.HealthHandler
	Readiness        *handler.ReadinessHandler

	TokenVerifier middleware.TokenVerifier
	Logger        zerolog.Logger

	// Metrics is the Prometheus registerer for HTTP metrics. Defaults to the
	// global registry; tests inject their own to avoid duplicate registration.
	Metrics prometheus.Registerer
}

// NewRouter builds the Echo instance with all routes registered.
//
// Route protection mirrors the middleware chain: Auth establishes identity,
// RBAC gates by role, handlers never see unauthenticated traffic on
// protected paths.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	registerer := deps.Metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "inventory",
		Registerer: registerer,
	}))

	auth := middleware.Auth(deps.TokenVerifier)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	apiGroup := e.Group("/api")

	// --- Auth ---
	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", deps.AuthHandler.Register)
	authGroup.POST("/login", deps.AuthHandler.Login)
	authGroup.GET("/me", deps.AuthHandler.Me, auth)

	// --- Users (auth required; mutations admin-only) ---
	users := apiGroup.Group("/users", auth)
	users.GET("", deps.UserHandler.List)
	users.GET("/:id", deps.UserHandler.Get)
	users.PUT("/:id", deps.UserHandler.Update, adminOnly)
	users.PATCH("/:id/role", deps.UserHandler.UpdateRole, adminOnly)
	users.PATCH("/:id/status", deps.UserHandler.UpdateStatus, adminOnly)
	users.DELETE("/:id", deps.UserHandler.Delete, adminOnly)

	// --- Products (reads public) ---
	products := apiGroup.Group("/products")
	products.GET("", deps.ProductHandler.List)
	products.GET("/:id", deps.ProductHandler.Get)
	products.POST("", deps.ProductHandler.Create, auth, staff)
	products.PUT("/:id", deps.ProductHandler.Update, auth, staff)
	products.DELETE("/:id", deps.ProductHandler.Delete, auth, adminOnly)

	// --- Categories (reads public) ---
	categories := apiGroup.Group("/categories")
	categories.GET("", deps.CategoryHandler.List)
	categories.GET("/:id", deps.CategoryHandler.Get)
	categories.POST("", deps.CategoryHandler.Create, auth, staff)
	categories.PUT("/:id", deps.CategoryHandler.Update, auth, staff)
	categories.DELETE("/:id", deps.CategoryHandler.Delete, auth, adminOnly)

	// --- Brands (reads public) ---
	brands := apiGroup.Group("/brands")
	brands.GET("", deps.BrandHandler.List)
	brands.GET("/:id", deps.BrandHandler.Get)
	brands.POST("", deps.BrandHandler.Create, auth, staff)
	brands.PUT("/:id", deps.BrandHandler.Update, auth, staff)
	brands.DELETE("/:id", deps.BrandHandler.Delete, auth, adminOnly)

	// --- Dashboard ---
	apiGroup.GET("/dashboard/stats", deps.DashboardHandler.Stats, auth, staff)

	// --- Operational endpoints ---
	if deps.Health != nil {
		e.GET("/health", deps.Health.Liveness)
	}
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
