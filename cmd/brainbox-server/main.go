package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"brainbox/pkg/brainbox/auth"
	"brainbox/pkg/brainbox/config"
	"brainbox/pkg/brainbox/content"
	"brainbox/pkg/brainbox/database"
	"brainbox/pkg/brainbox/logging"
	"brainbox/pkg/brainbox/models"
	"brainbox/pkg/brainbox/share"

	_ "brainbox/api/swagger"
)

// @title Brainbox API
// @version 1.0
// @description A bookmark/content-sharing backend: tagged links behind bearer-token auth, with optional public share links.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token. Format: "Bearer {token}"

func main() {
	// .env is a local convenience; the real environment wins
	_ = godotenv.Load()

	logger, _ := logging.New()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to database
	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := models.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	tokens := auth.NewTokenManager(cfg.JWT.Secret)

	// Set up Gin router
	r := gin.New()
	r.Use(logging.RequestLogger(logger), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api/v1")
	{
		// Account routes (public, signup behind the payload validator)
		authHandler := auth.NewHandler(db, tokens, logger)
		authHandler.RegisterRoutes(api)

		shareHandler := share.NewHandler(db, logger)

		// Public share fetch (no auth)
		shareHandler.RegisterPublicRoutes(api)

		// Protected routes
		protected := api.Group("", auth.Middleware(tokens))

		contentHandler := content.NewHandler(db, logger)
		contentHandler.RegisterRoutes(protected)
		shareHandler.RegisterRoutes(protected)
	}

	logger.Info("Starting Brainbox server", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
