package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"api-scaffold/config"
	_ "api-scaffold/docs" // Swagger docs
	"api-scaffold/internal/httpserver"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/database"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/scope"
)

// @title       API Scaffold
// @description CRUD scaffold with a generic repository, pagination, transactions and structured errors.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting API Scaffold...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server exited with error: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Database
	dbCfg := database.Config{
		URL:        cfg.Database.URL,
		Driver:     cfg.Database.Driver,
		SQLitePath: cfg.Database.SQLitePath,
		MaxConns:   cfg.Database.MaxConns,
	}
	db, err := database.Connect(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Disconnect(db); err != nil {
			logger.Warnf(context.Background(), "Failed to close database: %v", err)
		}
	}()
	logger.Infof(ctx, "Database connected (%s)", dbCfg.Resolve())

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, model.All()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info(ctx, "Database schema is up to date")
	}

	// 4. Auth
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)
	if err != nil {
		return fmt.Errorf("init jwt manager: %w", err)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		JWTManager:  jwtManager,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 6. Run
	return httpServer.Run(ctx)
}
