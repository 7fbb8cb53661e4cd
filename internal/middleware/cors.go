package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORS allows the known frontend origins (Live Server defaults plus the
// configured FRONTEND_URL) with credentials.
func CORS(frontendURL string) gin.HandlerFunc {
	allowed := map[string]bool{
		"http://127.0.0.1:5500": true,
		"http://localhost:5500": true,
		"http://localhost:3000": true,
	}
	if frontendURL != "" {
		allowed[frontendURL] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
