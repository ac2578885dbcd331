package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/classpoint/internal/app/models"
	"github.com/emrek/classpoint/internal/pkg/auth"
	"github.com/emrek/classpoint/internal/pkg/flash"
)

// sessionContextKey is where the authenticated identity lives in the
// request context.
const sessionContextKey = "session"

// AuthMiddleware gates routes on a valid session and, optionally, an exact
// role. It fails closed: any violation flashes an access-denied notice and
// redirects to the login page without running the wrapped handler.
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// RequireSession validates the session cookie and stores the immutable
// identity it carries in the request context.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessions.CookieName())
		if err != nil {
			denyAccess(c)
			return
		}

		session, err := m.sessions.Verify(token)
		if err != nil {
			denyAccess(c)
			return
		}

		c.Set(sessionContextKey, *session)
		c.Next()
	}
}

// RequireRole checks that the session role matches exactly. It must run
// after RequireSession.
func (m *AuthMiddleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok || session.Role != role {
			denyAccess(c)
			return
		}
		c.Next()
	}
}

// CurrentSession returns the authenticated identity for this request, if any
func CurrentSession(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return auth.Session{}, false
	}
	session, ok := value.(auth.Session)
	return session, ok
}

// denyAccess aborts the request with the access-denied flow
func denyAccess(c *gin.Context) {
	flash.Set(c, flash.LevelDanger, "Access denied! Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
