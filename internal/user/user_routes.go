package user

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	userRepo := NewUserRepository(db)
	userController := NewUserController(userRepo, appConfig, log)
	jwtSecret := appConfig.JWT.AccessTokenSecret

	publicUsers := router.Group("/users")
	{
		publicUsers.GET("", userController.ListUsers)
		publicUsers.GET("/search", userController.SearchUsers)
		publicUsers.GET("/:user_id", userController.GetUser)
	}

	optional := router.Group("/users")
	optional.Use(middleware.OptionalAuthMiddleware(jwtSecret, db))
	{
		optional.GET("/:user_id/profile", userController.GetProfile)
	}

	me := router.Group("/users")
	me.Use(middleware.AuthMiddleware(jwtSecret, db))
	{
		me.GET("/me", userController.GetMe)
		me.PUT("/me", userController.UpdateMe)
		me.DELETE("/me", userController.DeactivateMe)
		me.PUT("/me/availability", userController.UpdateAvailability)
		me.GET("/me/completion", userController.GetCompletion)
		me.GET("/me/suggested-mentors", userController.GetSuggestedMentors)
		me.GET("/me/dashboard", userController.GetDashboard)
		me.GET("/me/profile-views", userController.GetProfileViews)
		me.GET("/me/saved", userController.ListSaved)
		me.POST("/:user_id/save", userController.ToggleSave)
	}
}
