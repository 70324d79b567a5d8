package review

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterReviewRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewReviewRepository(db)
	controller := NewReviewController(repo, appConfig, log)

	router.GET("/users/:user_id/reviews", controller.ListReviews)
	router.POST("/users/:user_id/reviews",
		middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db),
		controller.CreateReview)
}
