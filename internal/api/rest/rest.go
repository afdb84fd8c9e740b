package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-canvas/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Trait catalog
		v1.POST("/traits", auth, handler.DefineTrait)
		v1.GET("/traits/:name", handler.GetTrait)

		// Assets (public read access, mutations require a caller identity)
		v1.POST("/assets", auth, handler.Mint)
		v1.GET("/assets", handler.ListAssets)
		v1.GET("/assets/:id", handler.GetAsset)
		v1.GET("/assets/:id/traits", handler.GetAssetTraits)
		v1.POST("/assets/:id/customizations", auth, handler.ApplyCustomization)
		v1.POST("/assets/:id/collaborations", auth, handler.Collaborate)
		v1.POST("/assets/:id/lock", auth, handler.LockCustomization)

		// Accounts
		v1.GET("/accounts/:account/stats", handler.GetAccountStats)
		v1.POST("/accounts/:account/credit", middleware.APIKeyAuth(authCfg), handler.CreditAccount)

		// Audit trail
		v1.GET("/events", handler.ListEvents)
		v1.GET("/counters", handler.GetCounters)
	}
}
