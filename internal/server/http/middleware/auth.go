package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/sellerdesk/sellerdesk/internal/pkg/auth"
)

const (
	// CustomerIDContextKey is a gin context key for the authenticated customer.
	CustomerIDContextKey = "customerID"
	authCookieName       = "sellerdesk_token"
)

// TokenParser validates session tokens.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AuthRequired ensures the customer presents a valid session token before
// reaching the handler. The customer id and the raw token are planted into
// the request context so downstream service calls can forward the session.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		customerID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(CustomerIDContextKey, customerID)
		c.Request = c.Request.WithContext(
			pkgAuth.ContextWithSession(c.Request.Context(), customerID, token),
		)
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
