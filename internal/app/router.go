package app

import (
	"skillsync_backend/docs"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/middleware"
	"skillsync_backend/internal/model"
	"skillsync_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerLearnerRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

// Catalog reads take optional auth: guests see the public shape, logged-in
// users get their enrollment state folded in.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/signup", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/skills", middleware.TryAuthMiddleware(a.Config), c.skill.GetAllSkills)
		public.GET("/skills/:id", middleware.TryAuthMiddleware(a.Config), c.skill.GetSkillByID)
		public.GET("/skills/:id/comments", c.community.GetComments)
		public.GET("/roadmaps", c.roadmap.GetAllRoadmaps)
		public.GET("/roadmaps/:id", middleware.TryAuthMiddleware(a.Config), c.roadmap.GetRoadmapByID)

		public.GET("/leaderboard", c.achievement.GetLeaderboard)
		public.GET("/interests", c.user.GetInterests)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.GetProfile)
	rg.PUT("/users/me", c.user.UpdateProfile)
	rg.POST("/users/me/avatar", c.user.UploadAvatar)

	// the completion cascade entry points
	rg.POST("/skills/:id/start", c.skill.StartSkill)
	rg.POST("/skills/:id/lessons/:lessonId/complete", c.skill.CompleteLesson)
	rg.PUT("/progress/lessons/:lessonId", c.skill.MarkLesson)
	rg.DELETE("/skills/:id/leave", c.skill.LeaveSkill)

	rg.POST("/roadmaps/:id/start", c.roadmap.StartRoadmap)

	rg.GET("/dashboard", c.dashboard.GetSummary)
	rg.GET("/achievements", c.achievement.GetAchievements)
	rg.GET("/users/:userId/badges", c.achievement.GetUserBadges)

	rg.POST("/skills/:id/comments", c.community.AddComment)
	rg.DELETE("/comments/:id", c.community.DeleteComment)
	rg.GET("/notifications", c.community.GetNotifications)
	rg.PUT("/notifications/:id/read", c.community.MarkNotificationRead)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.POST("/users/:id/badges/:badgeId", c.achievement.AwardBadge)

		admin.POST("/skills", c.skill.CreateSkill)
		admin.POST("/modules", c.skill.CreateModule)
		admin.POST("/lessons", c.skill.CreateLesson)
		admin.POST("/roadmaps", c.roadmap.CreateRoadmap)
	}
}
