package main

import (
	"log"

	"github.com/MuruliCGPayroute/superpetzjp/cmd"
	"github.com/MuruliCGPayroute/superpetzjp/internal/data/repository"
	"github.com/MuruliCGPayroute/superpetzjp/internal/wire"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/database"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/gateway"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/mailer"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Session store: redis when configured, in-memory otherwise
	var store session.Store
	if config.Session.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(config.Session)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		store = redisStore
		logger.Info("Redis session store connected", zap.String("addr", config.Session.RedisAddr))
	} else {
		store = session.NewMemoryStore()
		logger.Warn("No redis configured, sessions are in-memory and lost on restart")
	}
	sessions := session.NewManager(store, config.Session)

	// Image uploads
	saver, err := storage.NewDiskSaver(config.Uploads.Dir, config.Uploads.MaxBytes)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	mail := mailer.NewSMTPMailer(config.Email)
	gw := gateway.NewRazorpayClient(config.Gateway)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, sessions, saver, mail, gw, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
