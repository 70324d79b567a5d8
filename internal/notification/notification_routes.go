package notification

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterNotificationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewNotificationRepository(db)
	controller := NewNotificationController(repo, appConfig, log)

	notifications := router.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		notifications.GET("", controller.ListNotifications)
		notifications.GET("/unread-count", controller.UnreadCount)
		notifications.PUT("/read-all", controller.MarkAllRead)
		notifications.PUT("/:notification_id/read", controller.MarkRead)
	}
}
