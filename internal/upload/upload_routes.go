package upload

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUploadRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	controller := NewUploadController(NewLocalStore(appConfig.App.UploadDir), appConfig, log)

	router.POST("/upload",
		middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db),
		controller.UploadFile)
}
