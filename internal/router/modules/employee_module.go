package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/employee-directory/internal/interface/http"
	"github.com/oksasatya/employee-directory/internal/interface/middleware"
	"github.com/oksasatya/employee-directory/internal/session"
)

// EmployeeModule wires the listing and CRUD routes. Every route here
// requires an authenticated session.
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
	Gate    session.Gate
}

func NewEmployee(h *handlers.EmployeeHandler, gate session.Gate) *EmployeeModule {
	return &EmployeeModule{Handler: h, Gate: gate}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.Gate))
	{
		auth.GET("", m.Handler.Home)
		auth.GET("/home", m.Handler.Home)
		auth.GET("/employee/add", m.Handler.AddPage)
		auth.POST("/employee/add", m.Handler.Add)
		auth.GET("/employee/:id", m.Handler.View)
		auth.GET("/employee/:id/edit", m.Handler.EditPage)
		auth.POST("/employee/:id/edit", m.Handler.Edit)
		auth.POST("/employee/:id/delete", m.Handler.Delete)
	}
}
