package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

func extractClaims(c *gin.Context, svc AuthService) *Claims {
	var tokenString string
	if header := c.GetHeader("Authorization"); header != "" {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	} else {
		// browser websocket clients cannot set headers
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		return nil
	}

	claims, err := svc.ParseToken(tokenString)
	if err != nil {
		return nil
	}
	return claims
}

// RequireAuth gates a route group behind a valid session token.
func RequireAuth(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c, svc)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func RequireAdmin(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c, svc)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}
		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func RequireSuperAdmin(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := extractClaims(c, svc)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}
		if !claims.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "superadmin access required"})
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the principal set by the guard middleware.
func ClaimsFromContext(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
