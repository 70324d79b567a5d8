package messaging

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterMessagingRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewMessagingRepository(db)
	controller := NewMessagingController(repo, appConfig, log)

	messaging := router.Group("/messaging")
	messaging.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		messaging.POST("/conversations", controller.StartConversation)
		messaging.GET("/conversations", controller.ListConversations)
		messaging.GET("/conversations/:conversation_id/messages", controller.ListMessages)
		messaging.PUT("/conversations/:conversation_id/read", controller.MarkRead)
		messaging.POST("/messages", controller.SendMessage)
	}
}
