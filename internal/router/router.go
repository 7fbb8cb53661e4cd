package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/config"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/handlers"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/middleware"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/redis"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Notes    *handlers.NoteHandler
	Catalogs *handlers.CatalogHandler
	Stats    *handlers.StatsHandler
}

// SetupRouter wires middleware and all API routes onto the engine.
// Everything under /api shares the global rate limit; /login additionally
// gets the stricter login limit and stays outside the auth gate.
func SetupRouter(router *gin.Engine, cfg *config.Config, rdb *redis.Service, h Handlers) {
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORS(cfg.FrontendURL))
	router.Use(middleware.BodySizeLimit(10 << 10))

	SiteRoutes(router)

	api := router.Group("/api")
	api.Use(middleware.RateLimit("api", cfg.RateLimitMax, cfg.RateLimitWindow, rdb,
		"請求過於頻繁，請稍後再試"))

	loginLimiter := middleware.RateLimit("login", cfg.LoginLimitMax, cfg.RateLimitWindow, rdb,
		"登入失敗次數過多，請 15 分鐘後再試")
	api.POST("/login", loginLimiter, h.Auth.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.PUT("/user/password", h.Auth.ChangePassword)

	NoteRoutes(protected, h.Notes)
	CatalogRoutes(protected, h.Catalogs)
	StatsRoutes(protected, h.Stats)
}
