package main

import (
	"log"
	"net/http"
	"os"

	"campus-eats-api/config"
	"campus-eats-api/handlers"
	"campus-eats-api/routes"
	"campus-eats-api/seed"
	"campus-eats-api/services"
	"campus-eats-api/storage"
	"campus-eats-api/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	records, err := openRecords(cfg)
	if err != nil {
		log.Fatal("Failed to open record storage:", err)
	}

	identity := store.NewIdentity(records, seed.Users())
	catalog := store.NewCatalog(records, seed.Restaurants(), seed.Menu())
	describer := services.NewDescriber(cfg.GeminiAPIKey, cfg.GeminiModel)
	handlers.Use(identity, catalog, describer)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Campus Eats API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the Campus Eats API",
			"docs":    "/api/lifecycle",
			"health":  "/health",
			"roles":   []string{"student", "restaurant admin", "super admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// openRecords picks the persistence driver. Files are the default; sqlite
// keeps everything in one database file instead.
func openRecords(cfg *config.Config) (storage.Records, error) {
	if cfg.StorageDriver == "sqlite" {
		return storage.NewSQLite(cfg.DBPath)
	}
	return storage.NewFile(cfg.DataDir)
}
