package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/handlers"
)

// CatalogRoutes defines routes for the read-only category/role catalogs
func CatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/roles", catalogHandler.GetRoles)
}

// StatsRoutes defines routes for the monthly progress roll-ups
func StatsRoutes(rg *gin.RouterGroup, statsHandler *handlers.StatsHandler) {
	statsGroup := rg.Group("/stats")
	{
		statsGroup.GET("/categories", statsHandler.GetCategoryStats)
		statsGroup.GET("/roles", statsHandler.GetRoleStats)
	}
}
