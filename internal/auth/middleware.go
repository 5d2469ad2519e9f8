package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Roles stored in JWT claims. Every account is exactly one of these.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// AuthRequired is a Gin middleware that validates the JWT from
// Authorization: Bearer <token> and stores the claims in the context.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group on the role claim. MUST run after
// AuthRequired. Centralizing the check here keeps staff-only surfaces
// uniformly protected instead of relying on per-handler branches.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: " + role + " access required",
			})
			return
		}
		c.Next()
	}
}
