package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/stats"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// StatsHandler serves the monthly progress roll-ups. The month query
// parameter ("YYYY-MM") defaults to the current month.
type StatsHandler struct {
	notes    NoteService
	catalogs CatalogService
}

func NewStatsHandler(notes NoteService, catalogs CatalogService) *StatsHandler {
	return &StatsHandler{notes: notes, catalogs: catalogs}
}

func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	month := statsMonth(c)

	categories, err := h.catalogs.Categories(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read categories for stats")
		responses.Error(c, http.StatusInternalServerError, "讀取失敗")
		return
	}

	notes, err := h.notes.List(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read notes for stats")
		responses.Error(c, http.StatusInternalServerError, "讀取筆記失敗")
		return
	}

	c.JSON(http.StatusOK, stats.CategoryProgress(categories, notes, month))
}

func (h *StatsHandler) GetRoleStats(c *gin.Context) {
	month := statsMonth(c)

	roles, err := h.catalogs.Roles(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read roles for stats")
		responses.Error(c, http.StatusInternalServerError, "讀取目標失敗")
		return
	}

	notes, err := h.notes.List(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read notes for stats")
		responses.Error(c, http.StatusInternalServerError, "讀取筆記失敗")
		return
	}

	c.JSON(http.StatusOK, stats.RoleProgress(roles, notes, month))
}

func statsMonth(c *gin.Context) string {
	if month := c.Query("month"); month != "" {
		return month
	}
	return time.Now().Format("2006-01")
}
