package middleware

import (
	"net/http"
	"strings"

	"agrirent/internal/entity"
	"agrirent/internal/repository"
	"agrirent/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserKey   = "user"
	ctxClaimsKey = "token_claims"
)

type AuthMiddleware struct {
	users  repository.UserRepository
	tokens *service.TokenService
}

func NewAuthMiddleware(users repository.UserRepository, tokens *service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		tokens: tokens,
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAuth verifies the bearer token (signature, expiry, revocation),
// loads the user with both profiles and stashes it in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "Authentication required.")
			return
		}

		claims, err := m.tokens.Parse(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token.")
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Your account has been deactivated. Please contact support.",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
	c.Abort()
}

// CurrentUser returns the authenticated user stashed by RequireAuth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// CurrentClaims returns the verified token claims for the request.
func CurrentClaims(c *gin.Context) (*service.TokenClaims, bool) {
	value, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.TokenClaims)
	return claims, ok
}
