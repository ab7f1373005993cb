package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/squad-service/internal/api/http/handlers"
	"github.com/spec-kit/squad-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Squads         *handlers.SquadsHandler
	Clubs          *handlers.ClubsHandler
	Roles          *handlers.RolesHandler
	Members        *handlers.MembersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are public; every resource
// mutation requires a valid bearer token plus the admin flag, except open
// user self-registration.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api/v1")

	api.Post("/auth/login", cfg.Auth.Login)

	users := api.Group("/users")
	users.Post("/", cfg.Users.Register)
	users.Get("/", cfg.Users.List)
	users.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("users"), cfg.Users.Update)
	users.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("users"), cfg.Users.Delete)

	squads := api.Group("/squads")
	squads.Get("/", cfg.Squads.List)
	squads.Get("/:id", cfg.Squads.Get)
	squads.Get("/:id/members", cfg.Squads.Roster)
	squads.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin("squads"), cfg.Squads.Create)
	squads.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("squads"), cfg.Squads.Update)
	squads.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("squads"), cfg.Squads.Delete)

	clubs := api.Group("/clubs")
	clubs.Get("/", cfg.Clubs.List)
	clubs.Get("/:id", cfg.Clubs.Get)
	clubs.Get("/:id/members", cfg.Clubs.Roster)
	clubs.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin("clubs"), cfg.Clubs.Create)
	clubs.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("clubs"), cfg.Clubs.Update)
	clubs.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("clubs"), cfg.Clubs.Delete)

	roles := api.Group("/roles")
	roles.Get("/", cfg.Roles.List)
	roles.Get("/:id", cfg.Roles.Get)
	roles.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin("roles"), cfg.Roles.Create)
	roles.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("roles"), cfg.Roles.Update)
	roles.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("roles"), cfg.Roles.Delete)

	members := api.Group("/members")
	members.Get("/", cfg.Members.List)
	members.Get("/:id", cfg.Members.Get)
	members.Post("/", cfg.AuthMiddleware.Handle, auth.RequireAdmin("members"), cfg.Members.Create)
	members.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("members"), cfg.Members.Update)
	members.Delete("/:id", cfg.AuthMiddleware.Handle, auth.RequireAdmin("members"), cfg.Members.Delete)
}
