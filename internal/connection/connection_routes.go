package connection

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterConnectionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewConnectionRepository(db)
	controller := NewConnectionController(repo, appConfig, log)

	connections := router.Group("/connections")
	connections.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		connections.POST("", controller.SendRequest)
		connections.GET("", controller.ListConnections)
		connections.GET("/requests", controller.ListRequests)
		connections.PUT("/:connection_id", controller.RespondToRequest)
		connections.DELETE("/:connection_id/cancel", controller.CancelRequest)
		connections.DELETE("/:connection_id", controller.RemoveConnection)
	}
}
