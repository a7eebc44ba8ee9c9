package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"sellerhub/configs"
	"sellerhub/internal/domain"
	custommiddleware "sellerhub/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	Authenticator     *custommiddleware.Authenticator
	RateLimit         configs.RateLimitConfig
	DB                interface{ Ping(context.Context) error }
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	CalculatorHandler *CalculatorHandler
	ConnectionHandler *ConnectionHandler
	ResearchHandler   *ResearchHandler
	SavedAdHandler    *SavedAdHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(config.RateLimit.RPS),
			Burst: config.RateLimit.Burst,
		}),
	}))

	e.Validator = NewRequestValidator()

	// Health check
	e.GET("/health", func(c echo.Context) error {
		if config.DB != nil {
			if err := config.DB.Ping(c.Request().Context()); err != nil {
				return ErrorResponse(c, http.StatusServiceUnavailable, "Database unreachable", nil)
			}
		}
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "sellerhub-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public except refresh/profile)
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.POST("/refresh", config.AuthHandler.Refresh, config.Authenticator.Authenticate)
		auth.GET("/profile", config.AuthHandler.Profile, config.Authenticator.Authenticate)
	}

	// User routes
	users := api.Group("/users", config.Authenticator.Authenticate)
	{
		users.PUT("/profile", config.UserHandler.UpdateProfile)
		users.PUT("/plan", config.UserHandler.UpdatePlan)
		users.GET("/stats", config.UserHandler.Stats)
		users.GET("/plans", config.UserHandler.Plans)
	}

	// Calculator routes
	calculators := api.Group("/calculators", config.Authenticator.Authenticate)
	{
		calculators.POST("/quick/dre", config.CalculatorHandler.QuickDRE)
		calculators.POST("/quick/pricing", config.CalculatorHandler.QuickPricing)
		calculators.POST("/dre", config.CalculatorHandler.CreateDRE)
		calculators.GET("/dre", config.CalculatorHandler.ListDREs)
		calculators.GET("/dre/:id", config.CalculatorHandler.GetDRE)
		calculators.POST("/pricing", config.CalculatorHandler.CreatePricing)
		calculators.GET("/pricing", config.CalculatorHandler.ListPricings)
		calculators.GET("/pricing/:id", config.CalculatorHandler.GetPricing)
	}

	// Store connection routes. Creating and syncing connections is a
	// premium feature.
	premium := custommiddleware.RequirePlan(domain.PlanPremium)
	connections := api.Group("/connections", config.Authenticator.Authenticate)
	{
		connections.POST("", config.ConnectionHandler.Create, premium)
		connections.GET("", config.ConnectionHandler.List)
		connections.GET("/products", config.ConnectionHandler.Products)
		connections.GET("/:id", config.ConnectionHandler.Get)
		connections.PUT("/:id", config.ConnectionHandler.Update)
		connections.DELETE("/:id", config.ConnectionHandler.Delete)
		connections.POST("/:id/sync", config.ConnectionHandler.Sync, premium)
	}

	// Market research routes
	research := api.Group("/research", config.Authenticator.Authenticate)
	{
		research.GET("/trends", config.ResearchHandler.Trends)
		research.POST("", config.ResearchHandler.Create)
		research.GET("", config.ResearchHandler.List)
		research.GET("/:id", config.ResearchHandler.Get)
		research.PUT("/:id", config.ResearchHandler.Update)
		research.DELETE("/:id", config.ResearchHandler.Delete)
	}

	// Saved ad routes
	savedAds := api.Group("/saved-ads", config.Authenticator.Authenticate)
	{
		savedAds.POST("", config.SavedAdHandler.Create)
		savedAds.GET("", config.SavedAdHandler.List)
		savedAds.GET("/:id", config.SavedAdHandler.Get)
		savedAds.PUT("/:id", config.SavedAdHandler.Update)
		savedAds.DELETE("/:id", config.SavedAdHandler.Delete)
	}
}
