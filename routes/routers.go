package routes

import (
	"edubot/controllers"
	"edubot/services"
	"edubot/services/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes gắn 2 endpoint public của chatbot vào router
func SetupRoutes(router *gin.Engine, db *gorm.DB, provider services.CompletionProvider) *services.ChatService {
	chatService := services.NewChatService(services.ChatServiceOptions{
		DB:       db,
		Provider: provider,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel, "chat"),
	})
	chatController := controllers.NewChatController(chatService, logger.NewDefaultLogger(logger.InfoLevel, "chat-controller"))

	router.POST("/chat", chatController.CreateChat)
	router.GET("/history", chatController.GetHistory)

	return chatService
}
