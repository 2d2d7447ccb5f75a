package middleware

import (
	"net/http"
	"strings"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "user_role"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthRequired rejects the request unless a valid bearer token is present.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := pkg.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// AuthOptional attaches the identity when a valid token is present and
// proceeds anonymously otherwise. An invalid token is treated as no token.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if claims, err := pkg.ParseToken(tokenStr); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextRoleKey, claims.Role)
			}
		}
		c.Next()
	}
}

// AdminOnly gates a route to admins. Use after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Role(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 when anonymous.
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		return v.(uint64)
	}
	return 0
}

// Role returns the authenticated user's role, or "" when anonymous.
func Role(c *gin.Context) string {
	if v, ok := c.Get(ContextRoleKey); ok {
		return v.(string)
	}
	return ""
}
