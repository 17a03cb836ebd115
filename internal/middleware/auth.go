package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"teacher-rating-api/internal/apperr"
	"teacher-rating-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie holding the signed session token.
const SessionCookie = "session"

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/log-in/"

// Authenticator resolves a session token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// RequireAuth lets the request through only when the session cookie maps to
// an existing user; otherwise it redirects to the login page.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if _, ok := apperr.As(err); !ok {
				slog.Error("session check failed", "error", err)
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		// Store user info in context for use in handlers
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)

		c.Next()
	}
}
