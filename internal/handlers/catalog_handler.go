package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// CatalogService is what the catalog handlers need.
type CatalogService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Roles(ctx context.Context) ([]models.Role, error)
}

type CatalogHandler struct {
	catalogs CatalogService
}

func NewCatalogHandler(catalogs CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogs.Categories(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read categories")
		responses.Error(c, http.StatusInternalServerError, "讀取失敗")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) GetRoles(c *gin.Context) {
	roles, err := h.catalogs.Roles(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read roles")
		responses.Error(c, http.StatusInternalServerError, "讀取目標失敗")
		return
	}
	c.JSON(http.StatusOK, roles)
}
