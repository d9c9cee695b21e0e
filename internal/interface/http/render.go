// Package handlers holds the request controllers. Every write flow
// follows the same shape: bind form, validate, call the service, then
// redirect on success or re-render the originating page with the
// collected field errors.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/internal/interface/middleware"
	"github.com/oksasatya/employee-directory/internal/session"
	"github.com/oksasatya/employee-directory/pkg/helpers"
	"github.com/oksasatya/employee-directory/pkg/validation"
)

// base carries what every controller needs to render pages and queue
// flash messages.
type base struct {
	Gate    session.Gate
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

const ctxFlashIDKey = "flashID"

// flashID returns the request's flash scope, issuing the cookie lazily.
// The scope is independent of the auth session so messages queued before
// a login or logout still reach their page. A freshly issued id is kept
// on the context so a render later in the same request can drain it.
func (b *base) flashID(c *gin.Context) string {
	if id, ok := currentFlashID(c); ok {
		return id
	}
	id := uuid.NewString()
	b.Cookies.SetFlashID(c, id)
	c.Set(ctxFlashIDKey, id)
	return id
}

func currentFlashID(c *gin.Context) (string, bool) {
	if id := c.GetString(ctxFlashIDKey); id != "" {
		return id, true
	}
	if id, err := c.Cookie(helpers.FlashCookie); err == nil && id != "" {
		return id, true
	}
	return "", false
}

// logWith tags log entries with the request correlation id.
func (b *base) logWith(c *gin.Context) *logrus.Entry {
	return b.Logger.WithField(middleware.CtxRequestIDKey, c.GetString(middleware.CtxRequestIDKey))
}

func (b *base) flash(c *gin.Context, category, message string) {
	if err := b.Gate.AddFlash(c.Request.Context(), b.flashID(c), category, message); err != nil && b.Logger != nil {
		b.logWith(c).WithError(err).Warn("queue flash failed")
	}
}

// render draws a template with the common page data: pending flash
// messages (drained here, shown once) and the signed-in user, if any.
func (b *base) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		// templates index this map per field; keep it non-nil
		data["Errors"] = validation.FieldErrors{}
	}
	if fid, ok := currentFlashID(c); ok {
		flashes, err := b.Gate.PopFlashes(c.Request.Context(), fid)
		if err != nil && b.Logger != nil {
			b.logWith(c).WithError(err).Warn("pop flashes failed")
		}
		if len(flashes) > 0 {
			data["Flashes"] = flashes
		}
	}
	data["UserEmail"] = c.GetString(middleware.CtxUserEmailKey)
	c.HTML(status, tmpl, data)
}

func (b *base) notFound(c *gin.Context) {
	b.render(c, http.StatusNotFound, "404.html", nil)
}

func (b *base) serverError(c *gin.Context, err error) {
	if b.Logger != nil {
		b.logWith(c).WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}
	b.render(c, http.StatusInternalServerError, "500.html", nil)
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
