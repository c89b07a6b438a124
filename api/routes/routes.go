package routes

import (
	"github.com/ecodrop/ecodrop-backend/internal/config"
	"github.com/ecodrop/ecodrop-backend/internal/handlers"
	"github.com/ecodrop/ecodrop-backend/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers wired into the router
type HandlerDependencies struct {
	HealthHandler  *handlers.HealthHandler
	UserHandler    *handlers.UserHandler
	DropoffHandler *handlers.DropoffHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// A browser SPA on another origin is the only caller, so CORS defaults
	// to wide open unless origins are configured.
	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	corsConfig.AddAllowMethods("PATCH")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", deps.HealthHandler.Health)

		api.POST("/users", deps.UserHandler.UpsertUser)
		api.GET("/users/:uid/points", deps.UserHandler.GetPoints)
		api.PATCH("/users/:uid/points", deps.UserHandler.UpdatePoints)
		api.GET("/users/:uid/dropoffs", deps.DropoffHandler.ListByUser)

		api.POST("/dropoffs", deps.DropoffHandler.CreateDropoff)
		api.GET("/dropoffs/pending", deps.DropoffHandler.ListPending)
		api.PATCH("/dropoffs/:id/complete", deps.DropoffHandler.CompleteDropoff)
	}

	return router
}
