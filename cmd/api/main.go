package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	mongorepo "go-portfolio-backend/internal/repository/mongo"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Content management backend for a personal portfolio site using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Database
	client, err := database.NewMongoConnection(cfg.MongoURL)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	db := client.Database(cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Error("Failed to create indexes", "error", err)
		cancel()
		os.Exit(1)
	}
	cancel()

	// 4. Setup Redis (optional; the login limiter falls back to memory)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		}
	}

	// 5. Setup Repositories
	contentRepos := usecase.ContentRepos{
		Profile:     mongorepo.NewSingletonRepo[domain.Profile, *domain.Profile](db, mongorepo.CollProfile),
		Education:   mongorepo.NewSingletonRepo[domain.Education, *domain.Education](db, mongorepo.CollEducation),
		Experience:  mongorepo.NewSingletonRepo[domain.Experience, *domain.Experience](db, mongorepo.CollExperience),
		Growth:      mongorepo.NewSingletonRepo[domain.GrowthMindset, *domain.GrowthMindset](db, mongorepo.CollGrowthMindset),
		Footer:      mongorepo.NewSingletonRepo[domain.Footer, *domain.Footer](db, mongorepo.CollFooter),
		Contact:     mongorepo.NewSingletonRepo[domain.ContactSection, *domain.ContactSection](db, mongorepo.CollContactSection),
		Experiments: mongorepo.NewSingletonRepo[domain.ExperimentsSection, *domain.ExperimentsSection](db, mongorepo.CollExperiments),
	}
	projectRepo := mongorepo.NewProjectRepository(db)
	skillsRepo := mongorepo.NewSkillsRepository(db)
	journeyRepo := mongorepo.NewJourneyRepository(db)
	messageRepo := mongorepo.NewMessageRepository(db)
	adminRepo := mongorepo.NewAdminRepository(db)
	notificationRepo := mongorepo.NewNotificationRepository(db)
	searchRepo := mongorepo.NewSearchRepository(db)

	// 6. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenExpiryMinutes)*time.Minute)

	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	authUC := usecase.NewAuthUsecase(adminRepo, tokens, notificationUC)
	contentUC := usecase.NewContentUsecase(contentRepos)
	skillsUC := usecase.NewSkillsUsecase(skillsRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo)
	journeyUC := usecase.NewJourneyUsecase(journeyRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, notificationUC)
	searchUC := usecase.NewSearchUsecase(searchRepo)
	dashboardUC := usecase.NewDashboardUsecase(projectRepo, messageRepo, skillsRepo, notificationRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		ContentUC:      contentUC,
		SkillsUC:       skillsUC,
		ProjectUC:      projectUC,
		JourneyUC:      journeyUC,
		MessageUC:      messageUC,
		NotificationUC: notificationUC,
		SearchUC:       searchUC,
		DashboardUC:    dashboardUC,
		Tokens:         tokens,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
