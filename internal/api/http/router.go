package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-directory/internal/api/http/handlers"
	"github.com/spec-kit/employee-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Static /employees paths are registered
// before /employees/:id so they are not captured by the id route.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)

	requireAdmin := func(next ...fiber.Handler) []fiber.Handler {
		return append([]fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireRole(auth.RoleAdmin)}, next...)
	}
	authGroup.Post("/logout", requireAdmin(cfg.Auth.Logout)...)
	app.Get("/internal/metrics", requireAdmin(cfg.Health.Metrics)...)

	employees := app.Group("/employees", requireAdmin()...)
	employees.Get("", cfg.Employees.ListEmployees)
	employees.Post("", cfg.Employees.CreateEmployee)
	employees.Get("/summary", cfg.Employees.Summary)
	employees.Get("/print", cfg.Employees.PrintEmployees)
	employees.Get("/form-defaults", cfg.Employees.FormDefaults)
	employees.Post("/images", cfg.Employees.UploadImage)
	employees.Get("/:id", cfg.Employees.GetEmployee)
	employees.Put("/:id", cfg.Employees.UpdateEmployee)
	employees.Delete("/:id", cfg.Employees.DeleteEmployee)
	employees.Post("/:id/toggle-status", cfg.Employees.ToggleStatus)
}
