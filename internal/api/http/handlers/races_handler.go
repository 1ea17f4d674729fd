package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// RacesHandler exposes race endpoints.
type RacesHandler struct {
	races *service.RaceService
}

// NewRacesHandler constructs handler.
func NewRacesHandler(raceService *service.RaceService) *RacesHandler {
	return &RacesHandler{races: raceService}
}

// List handles GET /api/races.
func (h *RacesHandler) List(c *fiber.Ctx) error {
	races, err := h.races.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(races, raceResponse))
}

// Get handles GET /api/races/:id.
func (h *RacesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	race, err := h.races.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(raceResponse(*race))
}

// Create handles POST /api/races.
func (h *RacesHandler) Create(c *fiber.Ctx) error {
	race, err := raceFromRequest(c)
	if err != nil {
		return err
	}
	created, err := h.races.Create(c.UserContext(), race)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(raceResponse(*created))
}

// Update handles PUT /api/races/:id.
func (h *RacesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	race, err := raceFromRequest(c)
	if err != nil {
		return err
	}
	race.ID = id
	updated, err := h.races.Update(c.UserContext(), race)
	if err != nil {
		return err
	}
	return c.JSON(raceResponse(*updated))
}

// Delete handles DELETE /api/races/:id.
func (h *RacesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.races.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Results handles GET /api/races/:id/results.
func (h *RacesHandler) Results(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	results, err := h.races.ListResults(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(results, resultResponse))
}

func raceFromRequest(c *fiber.Ctx) (*domain.Race, error) {
	var req dto.RaceRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	errs := fieldErrors{}
	errs.check(!req.Date.IsZero(), "date", "is required")
	errs.check(req.Laps > 0, "laps", "must be a positive integer")
	errs.check(req.CircuitID > 0, "circuit_id", "must be a positive integer")
	if err := errs.err(); err != nil {
		return nil, err
	}
	return &domain.Race{Date: req.Date, Laps: req.Laps, Circuit: domain.CircuitRef{ID: req.CircuitID}}, nil
}
