package report

import (
	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterReportRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, log *logger.Logger) {
	repo := NewReportRepository(db)
	controller := NewReportController(repo, appConfig, log)

	reports := router.Group("/reports")
	reports.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		reports.POST("/users", controller.ReportUser)

		admin := reports.Group("")
		admin.Use(rmiddleware.SuperuserMiddleware())
		{
			admin.GET("", controller.ListReports)
			admin.PUT("/:report_id", controller.UpdateReport)
		}
	}
}
