package auth

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig, log)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/refresh", authController.RefreshToken)
	}

	// POST /users and /users/login are kept as aliases.
	router.POST("/users", authController.Register)
	router.POST("/users/login", authController.Login)

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authProtected.POST("/logout", authController.Logout)
	}
}
