package router

import (
	"time"

	"github.com/crewdeck-dev/crewdeck/db"
	"github.com/crewdeck-dev/crewdeck/internal/config"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/middleware"
	"github.com/crewdeck-dev/crewdeck/internal/services"
	"github.com/crewdeck-dev/crewdeck/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	projectHandler := handlers.NewProjectHandler(services.NewProjectService(db.DB, logger))

	rps, burst := config.AuthRateLimit()
	authLimiter := middleware.NewRateLimiter(rps, burst)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))

		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", handlers.CreateClient)
			clients.GET("", handlers.ListClients)
			clients.GET("/:client_id", handlers.GetClient)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware())
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)
			projects.GET("/:project_id", projectHandler.Get)
			projects.PUT("/:project_id", projectHandler.Update)
			projects.DELETE("/:project_id", projectHandler.Delete)

			// Roster endpoints
			projects.POST("/:project_id/users", projectHandler.AssignUser)
			projects.GET("/:project_id/users", projectHandler.ListMembers)
			projects.PUT("/:project_id/users/:user_id", projectHandler.UpdateMemberRole)
			projects.DELETE("/:project_id/users/:user_id", projectHandler.RemoveUser)
		}
	}

	return r
}
