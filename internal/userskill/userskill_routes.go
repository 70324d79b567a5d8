package userskill

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserSkillRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewUserSkillRepository(db)
	controller := NewUserSkillController(repo, appConfig, log)
	authMW := middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db)

	public := router.Group("/user-skills")
	{
		public.GET("/user/:user_id", controller.ListUserTeachSkills)
		public.GET("/mentors", controller.ListMentors)
	}

	authenticated := router.Group("/user-skills")
	authenticated.Use(authMW)
	{
		authenticated.POST("", controller.CreateUserSkill)
		authenticated.GET("/me", controller.ListMySkills)
		authenticated.PUT("/:user_skill_id", controller.UpdateUserSkill)
		authenticated.DELETE("/:user_skill_id", controller.DeleteUserSkill)
	}

	router.POST("/users/me/skills", authMW, controller.CreateUserSkill)
}
