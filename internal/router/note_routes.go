package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/handlers"
)

// NoteRoutes defines routes for note management
func NoteRoutes(rg *gin.RouterGroup, noteHandler *handlers.NoteHandler) {
	notes := rg.Group("/notes")
	{
		notes.GET("", noteHandler.GetNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.PUT("/:rowIndex", noteHandler.UpdateNote)
		notes.DELETE("/:rowIndex", noteHandler.DeleteNote)
	}
}
