package responses

import "github.com/gin-gonic/gin"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error writes an error response, optionally with field-level details
func Error(c *gin.Context, status int, message string, details ...string) {
	c.JSON(status, ErrorResponse{
		Message: message,
		Details: details,
	})
}

// Message writes a plain message response
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
