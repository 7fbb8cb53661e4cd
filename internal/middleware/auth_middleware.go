package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/auth"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// AuthMiddleware rejects requests without a valid bearer token before they
// reach any business logic. Missing credential is 401, invalid or expired
// credential is 403; the client discards its stored token on either.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Error(c, http.StatusUnauthorized, "請先登入")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Token validation failed")
			responses.Error(c, http.StatusForbidden, "登入已失效，請重新登入")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
