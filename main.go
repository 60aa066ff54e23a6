package main

import (
	"log"
	"net/http"
	"os"

	"resto/config"
	"resto/controllers"
	"resto/jobs"
	"resto/routes"
	"resto/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not loaded, falling back to ambient environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	jobs.SetPayrollGenerator(controllers.NewPayrollJobRunner(appLogger))
	jobs.SetAbsenceSweeper(controllers.NewAbsenceSweepRunner(appLogger))

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
