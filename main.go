package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-order-api/config"
	"restaurant-order-api/database"
	"restaurant-order-api/middleware"
	"restaurant-order-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.FrontendURL))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Order API",
			"roles":   []string{"user", "owner", "admin"},
		})
	})

	routes.Setup(r, db, cfg)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
