package main

import (
	"log"
	"net/http"

	"edubot/config"
	"edubot/jobs"
	"edubot/routes"
	"edubot/services"

	"github.com/gin-gonic/gin"
)

func main() {
	router, c, cfg, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Client gọi LLM khởi tạo một lần, dùng chung cho mọi request
	provider := services.NewGroqProvider(services.GroqProviderOptions{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.GroqModel,
		Timeout: cfg.ProviderTimeout,
	})

	chatService := routes.SetupRoutes(router, config.DB, provider)

	if err := jobs.InitCronJobs(c, chatService, cfg.RetentionDays); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
