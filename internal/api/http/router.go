package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/formula-api/internal/api/http/handlers"
	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/observability"
)

const (
	driverInfoMessage     = "you are not allowed to view this driver's information"
	driverPasswordMessage = "you can only change your own password"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Sessions *handlers.SessionHandler
	Drivers  *handlers.DriversHandler
	Circuits *handlers.CircuitsHandler
	Races    *handlers.RacesHandler
	Results  *handlers.ResultsHandler
	Teams    *handlers.TeamsHandler
	Cars     *handlers.CarsHandler
	Resolver *auth.SessionResolver
	Delay    auth.DelayFunc
	Metrics  *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	health := api.Group("/health")
	health.Get("/ping", cfg.Health.Ping)
	health.Get("/version", cfg.Health.Version)
	health.Get("/ready", cfg.Health.Ready)

	authDelay := auth.Guard(auth.AuthDelay(cfg.Delay))
	authenticated := auth.RequireAuthentication(cfg.Resolver)
	signedIn := auth.Guard(authenticated)
	admin := auth.Guard(authenticated, auth.RequireRole(domain.RoleAdmin))
	ownerOrAdmin := auth.Guard(authenticated, auth.RequireOwnerOrRole(domain.RoleAdmin, auth.OwnerFromParam("id"), driverInfoMessage))
	owner := auth.Guard(authenticated, auth.RequireOwner(auth.OwnerFromParam("id"), driverPasswordMessage))
	// For groups that already run signedIn.
	adminOnly := auth.Guard(auth.RequireRole(domain.RoleAdmin))

	api.Post("/sessions", authDelay, cfg.Sessions.Login)

	drivers := api.Group("/drivers")
	drivers.Post("/", authDelay, cfg.Drivers.Register)
	drivers.Get("/", admin, cfg.Drivers.List)
	drivers.Get("/:id", ownerOrAdmin, cfg.Drivers.Get)
	drivers.Put("/:id", ownerOrAdmin, cfg.Drivers.Update)
	drivers.Delete("/:id", ownerOrAdmin, cfg.Drivers.Delete)
	drivers.Get("/:id/results", ownerOrAdmin, cfg.Drivers.Results)
	drivers.Put("/:id/password", owner, cfg.Drivers.ChangePassword)

	circuits := api.Group("/circuits", signedIn)
	circuits.Get("/", cfg.Circuits.List)
	circuits.Get("/:id", cfg.Circuits.Get)
	circuits.Get("/:id/races", cfg.Circuits.Races)
	circuits.Post("/", adminOnly, cfg.Circuits.Create)
	circuits.Put("/:id", adminOnly, cfg.Circuits.Update)
	circuits.Delete("/:id", adminOnly, cfg.Circuits.Delete)

	races := api.Group("/races", signedIn)
	races.Get("/", cfg.Races.List)
	races.Get("/:id", cfg.Races.Get)
	races.Get("/:id/results", cfg.Races.Results)
	races.Post("/", adminOnly, cfg.Races.Create)
	races.Put("/:id", adminOnly, cfg.Races.Update)
	races.Delete("/:id", adminOnly, cfg.Races.Delete)

	results := api.Group("/results", signedIn)
	results.Get("/", cfg.Results.List)
	results.Get("/:id", cfg.Results.Get)
	results.Post("/", adminOnly, cfg.Results.Create)
	results.Put("/:id", adminOnly, cfg.Results.Update)
	results.Delete("/:id", adminOnly, cfg.Results.Delete)

	teams := api.Group("/teams", signedIn)
	teams.Get("/", cfg.Teams.List)
	teams.Get("/:id", cfg.Teams.Get)
	teams.Get("/:id/drivers", adminOnly, cfg.Teams.Drivers)
	teams.Get("/:id/cars", cfg.Teams.Cars)
	teams.Post("/", adminOnly, cfg.Teams.Create)
	teams.Put("/:id", adminOnly, cfg.Teams.Update)
	teams.Delete("/:id", adminOnly, cfg.Teams.Delete)

	cars := api.Group("/cars", signedIn)
	cars.Get("/", cfg.Cars.List)
	cars.Get("/:id", cfg.Cars.Get)
	cars.Get("/:id/results", cfg.Cars.Results)
	cars.Post("/", adminOnly, cfg.Cars.Create)
	cars.Put("/:id", adminOnly, cfg.Cars.Update)
	cars.Delete("/:id", adminOnly, cfg.Cars.Delete)
}
