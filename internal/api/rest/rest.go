package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Indexing progress
		v1.GET("/status", handler.GetStatus)

		// Token endpoints
		v1.GET("/token", handler.ListTokens)
		v1.POST("/token", handler.DeployToken)
		v1.GET("/token/:contract", handler.GetToken)
		v1.GET("/token/:contract/holder", handler.GetTokenHolders)

		// Transaction endpoints
		v1.GET("/transaction", handler.ListTransactions)
		v1.GET("/transaction/:hash", handler.GetTransaction)

		// Extrinsic endpoints
		v1.GET("/extrinsic", handler.ListExtrinsics)
		v1.GET("/extrinsic/:hash/:index", handler.GetExtrinsic)

		// Asset endpoints
		v1.GET("/asset", handler.ListAssets)
		v1.GET("/asset/:asset", handler.GetAsset)
		v1.GET("/asset/:asset/:index", handler.GetAssetInstance)
	}
}
