package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nadhifr/quizadmin/internal/helpers"
	"github.com/nadhifr/quizadmin/internal/session"
)

// JWTAuthMiddleware validates the bearer token on every request and stores
// the authenticated identity on the context. There is no caching: each
// navigation re-checks the session, so a logout is observed immediately.
func JWTAuthMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization token required.")
			c.Abort()
			return
		}

		identity, err := sessions.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired session.")
			c.Abort()
			return
		}

		c.Set("identity", identity)
		c.Next()
	}
}

// CurrentIdentity returns the admin attached by JWTAuthMiddleware, or nil on
// unprotected routes.
func CurrentIdentity(c *gin.Context) *session.Identity {
	v, exists := c.Get("identity")
	if !exists {
		return nil
	}
	identity, ok := v.(*session.Identity)
	if !ok {
		return nil
	}
	return identity
}
