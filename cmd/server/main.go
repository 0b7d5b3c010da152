package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio-api/adapters/http"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	authUC "github.com/khoahotran/portfolio-api/internal/application/usecase/auth"
	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	mediaUC "github.com/khoahotran/portfolio-api/internal/application/usecase/media"
	portfolioUC "github.com/khoahotran/portfolio-api/internal/application/usecase/portfolio"
	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio API server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
		if err != nil {
			appLogger.Fatal("Cannot initialize tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	portfolioRepo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	sessionRepo := persistence.NewRedisSessionRepo(redisClient, cfg.Auth.SessionLifespan)
	contentCache := persistence.NewRedisContentCache(redisClient, appLogger)

	// Services
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(sessionRepo, cfg.Auth.AdminPassword, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(sessionRepo, appLogger)
	createPortfolioUseCase := portfolioUC.NewCreatePortfolioUseCase(portfolioRepo, contentCache, kafkaClient, appLogger)
	listPortfolioUseCase := portfolioUC.NewListPortfolioUseCase(portfolioRepo, contentCache, appLogger)
	updatePortfolioUseCase := portfolioUC.NewUpdatePortfolioUseCase(portfolioRepo, contentCache, kafkaClient, appLogger)
	deletePortfolioUseCase := portfolioUC.NewDeletePortfolioUseCase(portfolioRepo, contentCache, kafkaClient, appLogger)
	educationUseCase := educationUC.NewEducationUseCase(educationRepo, contentCache, kafkaClient, appLogger)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, contentCache, kafkaClient, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, contentCache, kafkaClient, appLogger)
	uploadMediaUseCase := mediaUC.NewUploadMediaUseCase(uploader, appLogger)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, logoutUseCase, appLogger)
	portfolioHandler := httpAdapter.NewPortfolioHandler(
		createPortfolioUseCase,
		listPortfolioUseCase,
		updatePortfolioUseCase,
		deletePortfolioUseCase,
		appLogger,
	)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploadMediaUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(sessionRepo, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(errorMiddleware)

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	auth := router.Group("/auth")
	{
		auth.POST("", authHandler.Login)
		auth.POST("/logout", authMiddleware, authHandler.Logout)
	}

	resources := router.Group("/resources")
	{
		// Public read path
		resources.GET("/portfolio", portfolioHandler.List)
		resources.GET("/education", educationHandler.List)
		resources.GET("/skills", skillHandler.List)
		resources.GET("/profile", profileHandler.Get)

		// Admin write path
		private := resources.Group("")
		private.Use(authMiddleware)
		{
			private.POST("/portfolio", portfolioHandler.Create)
			private.PUT("/portfolio/:id", portfolioHandler.Update)
			private.DELETE("/portfolio/:id", portfolioHandler.Delete)

			private.POST("/education", educationHandler.Create)
			private.PUT("/education/:id", educationHandler.Update)
			private.DELETE("/education/:id", educationHandler.Delete)

			private.POST("/skills", skillHandler.Create)
			private.PUT("/skills/:id", skillHandler.Update)
			private.DELETE("/skills/:id", skillHandler.Delete)

			private.POST("/profile", profileHandler.Upsert)

			private.POST("/media", mediaHandler.Upload)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
