package routes

import (
	"github.com/bridgetunes/lottery-settlement/internal/config"
	"github.com/bridgetunes/lottery-settlement/internal/handlers"
	"github.com/bridgetunes/lottery-settlement/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the Ops API: a thin admin surface over the
// settlement engine, not a primary deliverable in its own right.
func SetupRouter(cfg *config.Config, authHandler *handlers.AuthHandler, adminHandler *handlers.AdminHandler) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
	}

	protected := router.Group("/api/v1/admin")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/drawings/:date", adminHandler.GetDrawingsByDate)
		protected.POST("/settlement/:date", adminHandler.TriggerSettlement)
	}

	return router
}
