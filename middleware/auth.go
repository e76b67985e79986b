package middleware

import (
	"net/http"
	"strings"

	"handyhub/models"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalContextKey is the gin context key the authenticated principal is
// stored under.
const PrincipalContextKey = "principal"

// PrincipalMiddleware validates the bearer token and stores the resolved
// principal in the request context. Identity lives in an external auth
// service; this layer only verifies the token it issued.
func PrincipalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractPrincipalClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		principal := models.Principal{UserID: subject, Role: models.Role(role)}
		if !principal.Role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// RequireAdmin aborts the request unless the stored principal is an admin.
// Must run after PrincipalMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetPrincipal fetches the authenticated principal from the gin context.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(PrincipalContextKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}
