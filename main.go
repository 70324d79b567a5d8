package main

import (
	"log"

	"github.com/DhavalSuthar-24/skillswap/config"
	_ "github.com/DhavalSuthar-24/skillswap/docs"
	"github.com/DhavalSuthar-24/skillswap/internal/database"
	"github.com/DhavalSuthar-24/skillswap/pkg/logger"
	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"github.com/DhavalSuthar-24/skillswap/routes"
	"github.com/gin-gonic/gin"
)

// @title SkillSwap REST API
// @version 1.0
// @description Peer to peer skill sharing: profiles, mentors, connections, sessions, messaging.
// @host localhost:8088
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	appLog, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(config.DB); err != nil {
		appLog.Fatal("AutoMigrate failed", "error", err)
	}
	appLog.Info("AutoMigrate successful")

	if err := utils.EnsureDir(cfg.App.UploadDir); err != nil {
		appLog.Fatal("Failed to create upload directory", "dir", cfg.App.UploadDir, "error", err)
	}

	r := routes.SetupRoutes(config.DB, cfg, appLog)

	appLog.Info("Starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		appLog.Fatal("Failed to run server", "error", err)
	}
}
