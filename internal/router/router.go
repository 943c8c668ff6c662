package router

import (
	"time"

	"github.com/chantier-dev/chantier/internal/handlers"
	"github.com/chantier-dev/chantier/internal/middleware"
	"github.com/chantier-dev/chantier/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/ping", handlers.Ping)

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	r.GET("/me", middleware.AuthMiddleware(), handlers.Me)

	projects := r.Group("/projects", middleware.AuthMiddleware())
	{
		projects.GET("", handlers.ListProjects)
		projects.POST("", handlers.CreateProject)
		projects.GET("/:project_id", handlers.GetProject)
		projects.PATCH("/:project_id", handlers.UpdateProject)
		projects.DELETE("/:project_id", handlers.DeleteProject)

		projects.GET("/:project_id/sites", handlers.ListSites)
		projects.POST("/:project_id/sites", handlers.CreateSite)

		projects.GET("/:project_id/tasks", handlers.ListTasks)
		projects.POST("/:project_id/tasks", handlers.CreateTask)

		projects.GET("/:project_id/budget", handlers.ListBudgetLines)
		projects.POST("/:project_id/budget", handlers.CreateBudgetLine)
		projects.GET("/:project_id/budget/summary", handlers.GetBudgetSummary)
	}

	return r
}
