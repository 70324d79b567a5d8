package session

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSessionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewSessionRepository(db)
	controller := NewSessionController(repo, appConfig, log)

	sessions := router.Group("/sessions")
	sessions.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		sessions.POST("", controller.BookSession)
		sessions.GET("", controller.ListSessions)
		sessions.GET("/:session_id", controller.GetSession)
		sessions.PUT("/:session_id/:action", controller.UpdateStatus)
	}
}
