package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-api/internal/utils"
)

// UIDKey is the gin context key holding the verified token subject.
const UIDKey = "uid"

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Validate(token string) (*utils.Claims, error)
}

// AuthMiddleware rejects requests without an Authorization header with 401
// and requests whose token does not verify with 403. On success the token's
// uid is available to later handlers through UID.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		claims, err := verifier.Validate(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Set(UIDKey, claims.UID)
		c.Next()
	}
}

// UID returns the verified uid set by AuthMiddleware, or "" outside it.
func UID(c *gin.Context) string {
	return c.GetString(UIDKey)
}
