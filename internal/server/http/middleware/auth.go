package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/scentshop/internal/domain/model"
	pkgAuth "github.com/polkiloo/scentshop/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user id.
	UserIDContextKey = "userID"
	// UserRoleContextKey is a gin context key for the authenticated role.
	UserRoleContextKey = "userRole"
	authCookieName     = "scentshop_token"
)

// TokenParser resolves a bearer token into an identity.
type TokenParser interface {
	ParseToken(token string) (int64, model.UserRole, error)
}

// AuthRequired ensures the caller is authenticated before reaching the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, role, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(UserRoleContextKey, role)
		c.Next()
	}
}

// AdminRequired rejects authenticated callers without the admin role. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserRoleContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		role, _ := val.(model.UserRole)
		if role != model.RoleAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
