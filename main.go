// main.go
package main

import (
	"context"
	"log"
	"time"

	"room-booking/cmd"
	"room-booking/internal/data/repository"
	"room-booking/internal/wire"
	"room-booking/pkg/database"
	"room-booking/pkg/deploy"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)
	if config.App.DemoRegistration {
		logger.Warn("DEMO_REGISTRATION is enabled: /registration signs in without credentials")
	}
	if config.Webhook.Secret == "" {
		logger.Warn("W_SECRET is empty: /update_server will reject every request")
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if removed, err := repos.Session.CleanExpiredSessions(ctx); err != nil {
		logger.Warn("Failed to clean expired sessions", zap.Error(err))
	} else {
		logger.Info("Expired sessions cleaned", zap.Int64("removed", removed))
	}
	cancel()

	translator, err := i18n.NewTranslator()
	if err != nil {
		logger.Fatal("Failed to build message catalog", zap.Error(err))
	}

	puller := deploy.NewGitPuller(config.Webhook.RepoPath, config.Webhook.Remote, logger)

	// Wire all dependencies
	app, err := wire.Wiring(repos, config, puller, translator, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
}
