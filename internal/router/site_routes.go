package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteRoutes defines unauthenticated liveness routes
func SiteRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
