package app

import (
	"fmt"

	"freelancehub_backend/database"
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/routes"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/webhook"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run loads configuration, connects to the database, migrates the
// schema and serves the API until the process exits.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the full engine with all middleware and routes.
// Separated from Run so tests can mount it on httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	sc, err := services.NewServiceContainer(db, cfg)
	if err != nil {
		return nil, err
	}

	verifier, err := webhook.NewVerifier(cfg.Clerk.WebhookSecret)
	if err != nil {
		return nil, err
	}

	h := handlers.NewAppHandlers(sc, verifier)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, h)
	return r, nil
}
