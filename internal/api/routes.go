package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, h *Handler) {
	// CORS middleware for public API access
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", h.HandleHealth)

	// Service information endpoint
	router.GET("/info", h.HandleInfo)
	router.GET("/", h.HandleInfo) // Root endpoint shows info

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/compress", h.HandleCompress)
		v1.POST("/decompress", h.HandleDecompress)
		v1.GET("/info", h.HandleInfo)
		v1.GET("/health", h.HandleHealth)
	}

	// Legacy routes for backward compatibility
	router.POST("/compress", h.HandleCompress)
	router.POST("/decompress", h.HandleDecompress)
}
