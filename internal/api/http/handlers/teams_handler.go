package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// TeamsHandler exposes team endpoints.
type TeamsHandler struct {
	teams *service.TeamService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(teamService *service.TeamService) *TeamsHandler {
	return &TeamsHandler{teams: teamService}
}

// List handles GET /api/teams.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.teams.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(teams, teamResponse))
}

// Get handles GET /api/teams/:id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	team, err := h.teams.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(*team))
}

// Create handles POST /api/teams.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	team, err := teamFromRequest(c)
	if err != nil {
		return err
	}
	created, err := h.teams.Create(c.UserContext(), team)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(teamResponse(*created))
}

// Update handles PUT /api/teams/:id.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	team, err := teamFromRequest(c)
	if err != nil {
		return err
	}
	team.ID = id
	updated, err := h.teams.Update(c.UserContext(), team)
	if err != nil {
		return err
	}
	return c.JSON(teamResponse(*updated))
}

// Delete handles DELETE /api/teams/:id.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.teams.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Drivers handles GET /api/teams/:id/drivers.
func (h *TeamsHandler) Drivers(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	drivers, err := h.teams.ListDrivers(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(drivers, driverResponse))
}

// Cars handles GET /api/teams/:id/cars.
func (h *TeamsHandler) Cars(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cars, err := h.teams.ListCars(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(cars, carResponse))
}

func teamFromRequest(c *fiber.Ctx) (*domain.Team, error) {
	var req dto.TeamRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	errs := fieldErrors{}
	errs.requireName("name", req.Name)
	errs.check(req.Country == nil || len(*req.Country) <= maxNameLength, "country", "must be at most 255 characters")
	errs.check(!req.JoinDate.IsZero(), "join_date", "is required")
	if err := errs.err(); err != nil {
		return nil, err
	}
	return &domain.Team{Name: req.Name, Country: req.Country, JoinDate: req.JoinDate}, nil
}
