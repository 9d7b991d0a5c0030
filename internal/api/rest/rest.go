package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/assethub-tools/nft-migrator/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Collection endpoints (public read access)
		v1.GET("/collections/:pallet", handler.ListCollections)
		v1.GET("/collections/:pallet/:id", handler.GetCollection)
		v1.GET("/collections/:pallet/:id/roles", handler.GetCollectionRoles)
		v1.GET("/collections/:pallet/:id/attributes", handler.GetCollectionAttributes)

		// Migration endpoints (public read access)
		v1.GET("/migrations/mappings", handler.GetMappings)
		v1.POST("/migrations/reconcile", handler.Reconcile)
		v1.GET("/migrations/claims", handler.ListClaims)

		// Signing endpoints (require authentication)
		v1.POST("/migrations/claims", middleware.Auth(authCfg), handler.ExecuteClaims)
		v1.POST("/collections", middleware.Auth(authCfg), handler.CreateCollection)
		v1.PUT("/collections/nfts/:id/team", middleware.Auth(authCfg), handler.SetTeam)
		v1.PUT("/collections/:pallet/:id/snapshot", middleware.Auth(authCfg), handler.AttachSnapshot)
	}
}
