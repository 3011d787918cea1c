package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/01moynul/taptosell-console/internal/auth"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/gin-gonic/gin"
)

// MaintenanceFunc reports whether the platform is in maintenance mode.
type MaintenanceFunc func(ctx context.Context) bool

// AuthMiddleware creates a gin.HandlerFunc that acts as our "security guard".
// maintenance may be nil; when it reports true only administrators get through.
func AuthMiddleware(tm *auth.TokenManager, maintenance MaintenanceFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			return
		}

		// 2. --- Validate Token ---
		claims, err := tm.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// 3. --- Enforce Maintenance Mode ---
		if maintenance != nil && claims.RoleID != models.RoleAdmin && maintenance(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "The system is currently in Maintenance Mode. Please try again later.",
			})
			return
		}

		// 4. --- Success ---
		c.Set("userID", claims.UserID())
		c.Set("roleID", claims.RoleID)
		c.Next()
	}
}

// RoleMiddleware must run after AuthMiddleware. It lets through the listed roles only.
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	allowed := make(map[int]bool, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = true
		names = append(names, models.RoleName(r))
	}
	denied := "Access denied: " + strings.Join(names, " or ") + " role required"

	return func(c *gin.Context) {
		roleID, exists := c.Get("roleID")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in context (AuthMiddleware must run first)"})
			return
		}
		if id, _ := roleID.(int); !allowed[id] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": denied})
			return
		}
		c.Next()
	}
}
