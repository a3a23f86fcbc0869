package http

import (
	"github.com/gin-gonic/gin"
	"github.com/robridge/scanner/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Web console scan endpoint
	router.POST("/scan", handler.Scan)

	// ESP32 device endpoints
	esp32 := router.Group("/api/esp32")
	{
		esp32.POST("/scan", handler.DeviceScan)
		esp32.POST("/ping/:deviceId", handler.DevicePing)
		esp32.GET("/ping/:deviceId", handler.DevicePing)
	}

	return router
}
