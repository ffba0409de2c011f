package main

import (
	"strings"
	"time"

	"github.com/orbitware/orbit-backend/internal/clients/redis"
	"github.com/orbitware/orbit-backend/internal/db"
	"github.com/orbitware/orbit-backend/internal/handlers"
	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/middleware"
	"github.com/orbitware/orbit-backend/internal/repos"
	"github.com/orbitware/orbit-backend/internal/server"
	"github.com/orbitware/orbit-backend/internal/services"
	"github.com/orbitware/orbit-backend/internal/utils"
)

func main() {
	logMode := utils.GetEnv("LOG_MODE", "development", nil)
	log, err := logger.New(logMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "", log)
	if jwtSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	accessTTL := time.Duration(utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)) * time.Second
	refreshTTL := time.Duration(utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)) * time.Second

	dbService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Fatal("Failed to migrate database", "error", err)
	}
	if err := dbService.SeedInsurancePlans(); err != nil {
		log.Fatal("Failed to seed insurance plans", "error", err)
	}
	gormDB := dbService.DB()

	cache, err := redis.NewCache(log)
	if err != nil {
		log.Warn("Redis cache unavailable, serving plans from database only", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	userRepo := repos.NewUserRepo(gormDB, log)
	userTokenRepo := repos.NewUserTokenRepo(gormDB, log)
	planRepo := repos.NewInsurancePlanRepo(gormDB, log)
	policyRepo := repos.NewPolicyRepo(gormDB, log)
	quoteRepo := repos.NewQuoteRepo(gormDB, log)

	authService := services.NewAuthService(gormDB, log, userRepo, userTokenRepo, jwtSecretKey, accessTTL, refreshTTL)
	userService := services.NewUserService(gormDB, log, userRepo)
	planService := services.NewPlanService(gormDB, log, planRepo, cache)
	recommendationService := services.NewRecommendationService(gormDB, log, userRepo, planRepo)
	documentService := services.NewDocumentService(log)
	policyService := services.NewPolicyService(gormDB, log, userRepo, planRepo, policyRepo, documentService)
	quoteService := services.NewQuoteService(gormDB, log, userRepo, planRepo, quoteRepo)
	dashboardService := services.NewDashboardService(gormDB, log, policyRepo, quoteRepo)

	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	allowedOrigins := strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000", log), ",")

	router := server.NewRouter(server.RouterConfig{
		HealthHandler:         handlers.NewHealthHandler(),
		AuthHandler:           handlers.NewAuthHandler(authService),
		UserHandler:           handlers.NewUserHandler(userService),
		PlanHandler:           handlers.NewPlanHandler(planService),
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService),
		PolicyHandler:         handlers.NewPolicyHandler(policyService),
		QuoteHandler:          handlers.NewQuoteHandler(quoteService),
		DashboardHandler:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware:        authMiddleware,
		AllowedOrigins:        allowedOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
