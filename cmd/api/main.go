package main

import (
	"fmt"
	"log"
	"os"

	"heatcompare/internal/api/handlers"
	"heatcompare/internal/api/middleware"
	"heatcompare/internal/api/results"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	store := results.NewStore(results.DefaultTTL)
	compareHandler := handlers.NewCompareHandler(store)
	sensitivityHandler := handlers.NewSensitivityHandler(compareHandler)
	tariffHandler := handlers.NewTariffHandler()

	log.Printf("Tariff presets served from %s", tariffHandler.GetTariffDir())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/compare", compareHandler.RunCompare)
		api.GET("/compare/:id", compareHandler.GetComparison)
		api.POST("/sensitivity", sensitivityHandler.RunSensitivity)

		api.GET("/variants", handlers.ListVariants)
		api.GET("/tariffs", tariffHandler.ListTariffs)
	}

	// Serve a charting front end from web/dist when present
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
