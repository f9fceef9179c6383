// Package server wires the HTTP routes and runs the API server.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"celerey/internal/handlers"
	"celerey/internal/logger"
	"celerey/internal/middleware"

	_ "celerey/internal/docs" // Import swagger docs
)

const healthTimeout = 2 * time.Second

// Dependencies collects what the routes need.
type Dependencies struct {
	Sessions       *handlers.SessionHandler
	Onboarding     *handlers.OnboardingHandler
	Activity       *handlers.ActivityHandler
	Health         []HealthProbe
	AdminAPIKey    string
	AllowedOrigins []string
}

// NewRouter builds the Gin engine serving the onboarding API.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(deps.AllowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", health(deps.Health))

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/options", handlers.GetOptions)
	v1.POST("/sessions", deps.Sessions.BeginJourney)

	// Session routes
	onboarding := v1.Group("/onboarding")
	onboarding.Use(middleware.SessionMiddleware())
	onboarding.GET("", deps.Onboarding.GetState)
	onboarding.PATCH("", deps.Onboarding.Update)
	onboarding.PUT("/step", deps.Onboarding.SetStep)
	onboarding.POST("/reset", deps.Onboarding.Reset)
	onboarding.GET("/navigate", deps.Onboarding.Navigate)
	onboarding.POST("/steps/:step", deps.Onboarding.SubmitStep)
	onboarding.POST("/steps/:step/complete", deps.Onboarding.CompleteStep)
	onboarding.POST("/countries", deps.Onboarding.AddAssetCountry)
	onboarding.DELETE("/countries/:country", deps.Onboarding.RemoveAssetCountry)
	onboarding.GET("/countries/suggestions", deps.Onboarding.CountrySuggestions)
	onboarding.POST("/goals/:goal/toggle", deps.Onboarding.ToggleGoal)
	onboarding.GET("/snapshot", deps.Onboarding.FinancialSnapshot)
	onboarding.GET("/booking", deps.Onboarding.BookingSummary)
	onboarding.GET("/events", deps.Onboarding.Events)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware(deps.AdminAPIKey))
	admin.GET("/sessions/:id/events", deps.Activity.History)

	return router
}

func health(probes []HealthProbe) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		for _, probe := range probes {
			if err := probe.Probe(ctx); err != nil {
				logger.Get().Errorw("health probe failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
