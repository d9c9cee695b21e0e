package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/employee-directory/internal/session"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// RequireAuth resolves the session cookie through the gate. Anonymous
// requests are redirected to the login page carrying the originally
// requested destination so a successful login can resume it.
func RequireAuth(gate session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(helpers.SessionCookie)
		id, err := gate.Current(c.Request.Context(), token)
		if err != nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, id.UserID)
		c.Set(CtxUserEmailKey, id.Email)
		c.Next()
	}
}

// AnonymousOnly guards the register and login entry points: an already
// authenticated user is sent to the home listing instead.
func AnonymousOnly(gate session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(helpers.SessionCookie)
		if _, err := gate.Current(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusFound, "/home")
			c.Abort()
			return
		}
		c.Next()
	}
}
