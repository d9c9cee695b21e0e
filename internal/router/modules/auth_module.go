package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/employee-directory/internal/interface/http"
	"github.com/oksasatya/employee-directory/internal/interface/middleware"
	"github.com/oksasatya/employee-directory/internal/session"
)

// AuthModule wires the registration, login, and logout routes.
// Register and login are anonymous-only entry points; logout works for
// anyone holding a session cookie.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Gate    session.Gate
}

func NewAuth(h *handlers.AuthHandler, gate session.Gate) *AuthModule {
	return &AuthModule{Handler: h, Gate: gate}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	anon := middleware.AnonymousOnly(m.Gate)

	rg.GET("/register", anon, m.Handler.RegisterPage)
	rg.POST("/register", anon, m.Handler.Register)
	rg.GET("/login", anon, m.Handler.LoginPage)
	rg.POST("/login", anon, m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)
}
