package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, engine RoutePlanner, providers ProviderStatus) {
	// Setup middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	hub := newSSEHub()
	go hub.run()

	// Health check endpoint
	router.GET("/health", healthCheck(providers))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/routes/search", searchRoutes(engine, hub))
		v1.GET("/routes/info", routeInfo())
		v1.GET("/routes/stream", streamEvents(hub))
	}
}
