package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/orbitware/orbit-backend/internal/handlers"
	"github.com/orbitware/orbit-backend/internal/middleware"
)

type RouterConfig struct {
	HealthHandler         *handlers.HealthHandler
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	PlanHandler           *handlers.PlanHandler
	RecommendationHandler *handlers.RecommendationHandler
	PolicyHandler         *handlers.PolicyHandler
	QuoteHandler          *handlers.QuoteHandler
	DashboardHandler      *handlers.DashboardHandler
	AuthMiddleware        *middleware.AuthMiddleware
	AllowedOrigins        []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", cfg.HealthHandler.Root)

	api := router.Group("/api")
	{
		api.GET("/health", cfg.HealthHandler.Health)

		auth := api.Group("/auth")
		{
			auth.POST("/register", cfg.AuthHandler.Register)
			auth.POST("/login", cfg.AuthHandler.Login)
			auth.POST("/refresh", cfg.AuthHandler.Refresh)
		}

		api.GET("/plans", cfg.PlanHandler.ListPlans)
		api.GET("/plans/:id", cfg.PlanHandler.GetPlan)
		api.POST("/premium-estimate", cfg.RecommendationHandler.EstimatePremium)

		protected := api.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)

			protected.GET("/user/profile", cfg.UserHandler.GetProfile)
			protected.PUT("/user/profile", cfg.UserHandler.UpdateProfile)

			protected.POST("/recommendations", cfg.RecommendationHandler.Recommend)
			protected.POST("/compare", cfg.RecommendationHandler.Compare)

			protected.GET("/policies", cfg.PolicyHandler.ListPolicies)
			protected.POST("/policies", cfg.PolicyHandler.PurchasePolicy)
			protected.GET("/policies/:id/document", cfg.PolicyHandler.DownloadDocument)

			protected.GET("/quotes", cfg.QuoteHandler.ListQuotes)
			protected.POST("/quotes", cfg.QuoteHandler.SaveQuote)

			protected.GET("/dashboard/stats", cfg.DashboardHandler.GetStats)
		}
	}

	return router
}
