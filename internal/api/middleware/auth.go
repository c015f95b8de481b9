package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jpalmer/promoboost/internal/logger"
	"github.com/jpalmer/promoboost/internal/service"
)

const claimsKey = "claims"

// RequireAuth returns a middleware that rejects requests without a valid
// bearer token. Validated claims are stored in the Gin context and the
// user ID is added to the request-scoped logger fields.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		ctx := logger.WithField(c.Request.Context(), logger.FieldUserID, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClaimsFromContext returns the validated claims stored by RequireAuth, or
// nil for unauthenticated requests.
func ClaimsFromContext(c *gin.Context) *service.Claims {
	if v, exists := c.Get(claimsKey); exists {
		if claims, ok := v.(*service.Claims); ok {
			return claims
		}
	}
	return nil
}
