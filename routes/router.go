package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/skillswap/config"
	"github.com/DhavalSuthar-24/skillswap/internal/auth"
	"github.com/DhavalSuthar-24/skillswap/internal/connection"
	"github.com/DhavalSuthar-24/skillswap/internal/messaging"
	"github.com/DhavalSuthar-24/skillswap/internal/middleware"
	"github.com/DhavalSuthar-24/skillswap/internal/notification"
	"github.com/DhavalSuthar-24/skillswap/internal/portfolio"
	"github.com/DhavalSuthar-24/skillswap/internal/report"
	"github.com/DhavalSuthar-24/skillswap/internal/review"
	"github.com/DhavalSuthar-24/skillswap/internal/session"
	"github.com/DhavalSuthar-24/skillswap/internal/skill"
	"github.com/DhavalSuthar-24/skillswap/internal/upload"
	"github.com/DhavalSuthar-24/skillswap/internal/user"
	"github.com/DhavalSuthar-24/skillswap/internal/userskill"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/responses"
)

func SetupRoutes(db *gorm.DB, cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static(upload.PublicPrefix, cfg.App.UploadDir)

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>SkillSwap API</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>SkillSwap API</h1>
					<a href="/swagger/index.html">API docs</a>
				</body>
			</html>
		`))
	})

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Error("health check", "error", err)
			responses.SendError(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		responses.SendSuccess(c, http.StatusOK, "ok", gin.H{"database": "up"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/")
	auth.RegisterAuthRoutes(api, db, cfg, log)
	user.RegisterUserRoutes(api, db, cfg, log)
	skill.RegisterSkillRoutes(api, db, cfg, log)
	userskill.RegisterUserSkillRoutes(api, db, cfg, log)
	portfolio.RegisterPortfolioRoutes(api, db, cfg, log)
	connection.RegisterConnectionRoutes(api, db, cfg, log)
	session.RegisterSessionRoutes(api, db, cfg, log)
	messaging.RegisterMessagingRoutes(api, db, cfg, log)
	notification.RegisterNotificationRoutes(api, db, cfg, log)
	review.RegisterReviewRoutes(api, db, cfg, log)
	report.RegisterReportRoutes(api, db, cfg, log)
	upload.RegisterUploadRoutes(api, db, cfg, log)

	return r
}
