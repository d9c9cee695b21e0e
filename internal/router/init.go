package router

import (
	"github.com/oksasatya/employee-directory/internal/application"
	"github.com/oksasatya/employee-directory/internal/container"
	pginfra "github.com/oksasatya/employee-directory/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/employee-directory/internal/interface/http"
	"github.com/oksasatya/employee-directory/internal/router/modules"
)

// InitModules builds the repositories, services, and handlers from the
// container singletons and registers every feature module.
// Called once during application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	gate := container.GetGate()
	cookies := container.GetCookies()

	users := pginfra.NewUserRepository(pool)
	employees := pginfra.NewEmployeeRepository(pool)

	authSvc := application.NewAuthService(users, logger)
	employeeSvc := application.NewEmployeeService(employees, logger)

	authHandler := handlers.NewAuthHandler(authSvc, gate, cookies, logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc, gate, cookies, logger)

	r.Add(modules.NewAuth(authHandler, gate))
	r.Add(modules.NewEmployee(employeeHandler, gate))
}
