package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/models"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/services"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// NoteService is what the note handlers need from the synchronization
// service.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, in services.NoteInput) (string, error)
	Update(ctx context.Context, rowIndex int, in services.NoteInput) error
	Delete(ctx context.Context, rowIndex int) error
}

type NoteHandler struct {
	notes NoteService
}

func NewNoteHandler(notes NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	ID             string `json:"id"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	Category       string `json:"category" binding:"required"`
	Content        string `json:"content"`
	Role           string `json:"role"`
	StartTime      string `json:"startTime" binding:"omitempty,datetime=15:04"`
	EndTime        string `json:"endTime" binding:"omitempty,datetime=15:04"`
	SyncToCalendar bool   `json:"syncToCalendar"`
	Recurrence     string `json:"recurrence"`
}

func (r noteRequest) input() services.NoteInput {
	return services.NoteInput{
		ID:             r.ID,
		Date:           r.Date,
		Category:       r.Category,
		Content:        r.Content,
		Role:           r.Role,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		SyncToCalendar: r.SyncToCalendar,
		Recurrence:     r.Recurrence,
	}
}

// GetNotes returns every note with its current row position.
func (h *NoteHandler) GetNotes(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to read notes")
		responses.Error(c, http.StatusInternalServerError, "讀取筆記失敗")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// CreateNote appends a note, mirroring it into the calendar when eligible.
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "資料格式錯誤", bindingDetails(err)...)
		return
	}

	eventID, err := h.notes.Create(c.Request.Context(), req.input())
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to create note")
		responses.Error(c, http.StatusInternalServerError, "儲存失敗")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Success",
		"eventId": eventID,
	})
}

// UpdateNote overwrites the note at the addressed row.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	rowIndex, ok := parseRowIndex(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "格式錯誤", bindingDetails(err)...)
		return
	}

	if err := h.notes.Update(c.Request.Context(), rowIndex, req.input()); err != nil {
		logger.Log.Error().Err(err).Int("rowIndex", rowIndex).Msg("Failed to update note")
		responses.Error(c, http.StatusInternalServerError, "更新失敗")
		return
	}

	responses.Message(c, http.StatusOK, "Updated")
}

// DeleteNote removes the addressed row; rows after it shift up by one.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	rowIndex, ok := parseRowIndex(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), rowIndex); err != nil {
		logger.Log.Error().Err(err).Int("rowIndex", rowIndex).Msg("Failed to delete note")
		responses.Error(c, http.StatusInternalServerError, "刪除失敗")
		return
	}

	responses.Message(c, http.StatusOK, "Deleted")
}

// parseRowIndex validates the positional address; row 1 is the header and
// must never be addressable.
func parseRowIndex(c *gin.Context) (int, bool) {
	rowIndex, err := strconv.Atoi(c.Param("rowIndex"))
	if err != nil || rowIndex < 2 {
		responses.Error(c, http.StatusBadRequest, "格式錯誤")
		return 0, false
	}
	return rowIndex, true
}
