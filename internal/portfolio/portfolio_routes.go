package portfolio

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPortfolioRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewPortfolioRepository(db)
	controller := NewPortfolioController(repo, appConfig, log)

	router.GET("/portfolio/user/:user_id", controller.ListForUser)

	authenticated := router.Group("/portfolio")
	authenticated.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.POST("/me", controller.CreateItem)
		authenticated.GET("/me", controller.ListMine)
		authenticated.PUT("/:portfolio_id", controller.UpdateItem)
		authenticated.DELETE("/:portfolio_id", controller.DeleteItem)
	}
}
