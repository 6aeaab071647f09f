package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairconnect/api/internal/api/http/handlers"
	"github.com/repairconnect/api/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. All /admin routes require an admin bearer
// token, including the status-transition routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/db-check", cfg.Health.DBCheck)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/summary", cfg.Admin.Summary)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
	admin.Post("/users/:id/suspend", cfg.Admin.SuspendUser)
	admin.Post("/users/:id/ban", cfg.Admin.BanUser)
	admin.Post("/users/:id/activate", cfg.Admin.ActivateUser)
}
