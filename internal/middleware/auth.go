package middleware

import (
	"strings"

	"medicab-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const clientKey = "storageClient"

// AuthMiddleware requires a bearer token signed with secret. An empty secret
// leaves the routes open.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			return
		}

		c.Set(clientKey, claims.Client)
		c.Next()
	}
}

// GetClientFromContext returns the client named in the caller's token.
func GetClientFromContext(c *gin.Context) (string, bool) {
	client, exists := c.Get(clientKey)
	if !exists {
		return "", false
	}
	name, ok := client.(string)
	return name, ok
}
