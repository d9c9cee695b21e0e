package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-directory/internal/application"
	"github.com/oksasatya/employee-directory/internal/forms"
	"github.com/oksasatya/employee-directory/internal/session"
	"github.com/oksasatya/employee-directory/pkg/helpers"
)

type AuthHandler struct {
	base
	Auth *application.AuthService
}

func NewAuthHandler(auth *application.AuthService, gate session.Gate, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		base: base{Gate: gate, Cookies: cookies, Logger: logger},
		Auth: auth,
	}
}

// RegisterPage GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Form": &forms.RegistrationForm{}})
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var f forms.RegistrationForm
	_ = c.ShouldBind(&f)

	errs, err := f.Validate(c.Request.Context(), h.Auth.Users)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !errs.Empty() {
		h.render(c, http.StatusOK, "register.html", gin.H{"Form": &f, "Errors": errs})
		return
	}

	if _, err := h.Auth.Register(c.Request.Context(), f.Email, f.Password); err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			// lost the race against a concurrent registration
			errs.Add("email", "That email is taken. Please choose a different one.")
			h.render(c, http.StatusOK, "register.html", gin.H{"Form": &f, "Errors": errs})
			return
		}
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "Your account has been created! You are now able to log in")
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{
		"Form": &forms.LoginForm{},
		"Next": safeNext(c.Query("next")),
	})
}

// Login POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var f forms.LoginForm
	_ = c.ShouldBind(&f)
	next := safeNext(c.Query("next"))

	errs := f.Validate()
	if !errs.Empty() {
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": &f, "Errors": errs, "Next": next})
		return
	}

	u, err := h.Auth.Authenticate(c.Request.Context(), f.Email, f.Password)
	if err != nil {
		// one generic message regardless of which factor was wrong
		h.flash(c, "danger", "Login Unsuccessful. Please check email and password")
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": &f, "Next": next})
		return
	}

	token, exp, err := h.Gate.Login(c.Request.Context(), u, f.Remember)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.Cookies.SetSession(c, token, f.Remember, exp)

	if next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookie); err == nil && token != "" {
		if err := h.Gate.Logout(c.Request.Context(), token); err != nil && h.Logger != nil {
			h.logWith(c).WithError(err).Warn("logout failed")
		}
	}
	h.Cookies.ClearSession(c)
	c.Redirect(http.StatusFound, "/home")
}
