package main

import (
	"github.com/AdityaRaghav22/GYM-SAAS/database"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/config"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg, nil)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", "error", err)
	}
	logger.Info("migrations applied", "driver", cfg.Database.Driver)
}
