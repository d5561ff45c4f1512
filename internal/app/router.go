package app

import (
	"studytrack_backend/docs"
	"studytrack_backend/internal/config"
	"studytrack_backend/internal/middleware"
	"studytrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		catalog := public.Group("/catalog")
		{
			catalog.GET("/modules", c.catalog.ListModules)
			catalog.GET("/categories", c.catalog.ListCategories)
			catalog.GET("/achievements", c.catalog.ListAchievements)
		}
	}

	// Authorized routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)

		authGroup.GET("/progress", c.progress.GetLedger)
		authGroup.PUT("/progress/modules/:moduleId", c.progress.UpdateModuleStatus)

		authGroup.GET("/achievements", c.achievement.GetAchievements)

		authGroup.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		authGroup.GET("/leaderboard/weekly", c.leaderboard.GetWeeklyActivity)

		authGroup.POST("/study/sessions", c.study.LogSession)
		authGroup.GET("/study/history", c.study.GetHistory)
		authGroup.GET("/study/stats", c.study.GetStats)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
		authGroup.GET("/dashboard/analytics", c.dashboard.GetAnalytics)
		authGroup.GET("/dashboard/recommendations", c.dashboard.GetRecommendations)

		authGroup.GET("/feed", c.feed.StreamUserFeed)
		authGroup.GET("/feed/roster", c.feed.StreamRosterFeed)
	}
}
