package skill

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	mw "github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSkillRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	skillRepo := NewSkillRepository(db)
	skillController := NewSkillController(skillRepo, appConfig, log)

	publicSkills := router.Group("/skills")
	{
		publicSkills.GET("", skillController.ListSkills)
		publicSkills.GET("/categories", skillController.GetCategories)
		publicSkills.GET("/suggestions", skillController.GetSuggestions)
		publicSkills.GET("/:skill_id", skillController.GetSkill)
	}

	authenticated := router.Group("/skills")
	authenticated.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authenticated.GET("/followed", skillController.ListFollowed)
		authenticated.POST("/:skill_id/follow", skillController.ToggleFollow)

		admin := authenticated.Group("")
		admin.Use(rmiddleware.SuperuserMiddleware())
		{
			admin.POST("", skillController.CreateSkill)
			admin.DELETE("/:skill_id", skillController.DeleteSkill)
		}
	}
}
