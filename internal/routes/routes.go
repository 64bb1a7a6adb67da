package routes

import (
	"medicab-server/internal/auth"
	"medicab-server/internal/config"
	"medicab-server/internal/handlers"
	"medicab-server/internal/middleware"
	"medicab-server/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with CORS and the application routes.
func NewRouter(backend storage.Backend, authService *auth.Service, cfg *config.Config) *gin.Engine {
	router := gin.Default()
	// Keys may contain escaped slashes.
	router.UseRawPath = true
	router.UnescapePathValues = true

	corsConfig := cors.DefaultConfig()
	if cfg.Origin == "" || cfg.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Origin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, backend, authService, cfg)
	return router
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, backend storage.Backend, authService *auth.Service, cfg *config.Config) {
	kvHandler := handlers.NewKVHandler(backend)
	authHandler := handlers.NewAuthHandler(authService)

	kv := router.Group("/api/v1/kv")
	kv.Use(middleware.AuthMiddleware(cfg.KVAPISecret))
	{
		kv.GET("/:key", kvHandler.Get)
		kv.PUT("/:key", kvHandler.Set)
		kv.POST("/:key", kvHandler.Set)
		kv.DELETE("/:key", kvHandler.Delete)
	}

	authRoutes := router.Group("/api/v1/auth")
	authRoutes.Use(middleware.AuthMiddleware(cfg.KVAPISecret))
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/session", authHandler.Session)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
