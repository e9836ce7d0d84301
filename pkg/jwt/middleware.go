package jwt

import (
	"strings"

	"travelmate/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserIDKey key under which the actor's user id is stored
	ContextUserIDKey = "user_id"
	// ContextUsernameKey key under which the actor's username is stored
	ContextUsernameKey = "username"
	// ContextClaimsKey key under which the full claims are stored
	ContextClaimsKey = "jwt_claims"
)

// AuthMiddleware extracts Authorization: Bearer <token>, validates it and
// stores the authenticated user in the gin context. Every operation that
// needs an actor id reads it from here.
func (s *JWTService) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Unauthorized(c, "Authorization header must be Bearer <token>")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			response.Unauthorized(c, "token is empty")
			c.Abort()
			return
		}

		claims, err := s.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "token invalid or expired")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID())
		c.Set(ContextUsernameKey, claims.Username())
		c.Set(ContextClaimsKey, claims)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, 0 when unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := userID.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentUsername returns the authenticated username.
func CurrentUsername(c *gin.Context) string {
	if username, exists := c.Get(ContextUsernameKey); exists {
		if name, ok := username.(string); ok {
			return name
		}
	}
	return ""
}

// GetClaims returns the full JWT claims from the gin context.
func GetClaims(c *gin.Context) *CustomClaims {
	if claims, exists := c.Get(ContextClaimsKey); exists {
		if cl, ok := claims.(*CustomClaims); ok {
			return cl
		}
	}
	return nil
}
