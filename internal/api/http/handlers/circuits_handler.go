package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// CircuitsHandler exposes circuit endpoints.
type CircuitsHandler struct {
	circuits *service.CircuitService
}

// NewCircuitsHandler constructs handler.
func NewCircuitsHandler(circuitService *service.CircuitService) *CircuitsHandler {
	return &CircuitsHandler{circuits: circuitService}
}

// List handles GET /api/circuits.
func (h *CircuitsHandler) List(c *fiber.Ctx) error {
	circuits, err := h.circuits.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(circuits, circuitResponse))
}

// Get handles GET /api/circuits/:id.
func (h *CircuitsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	circuit, err := h.circuits.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(circuitResponse(*circuit))
}

// Create handles POST /api/circuits.
func (h *CircuitsHandler) Create(c *fiber.Ctx) error {
	circuit, err := circuitFromRequest(c)
	if err != nil {
		return err
	}
	created, err := h.circuits.Create(c.UserContext(), circuit)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(circuitResponse(*created))
}

// Update handles PUT /api/circuits/:id.
func (h *CircuitsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	circuit, err := circuitFromRequest(c)
	if err != nil {
		return err
	}
	circuit.ID = id
	updated, err := h.circuits.Update(c.UserContext(), circuit)
	if err != nil {
		return err
	}
	return c.JSON(circuitResponse(*updated))
}

// Delete handles DELETE /api/circuits/:id.
func (h *CircuitsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.circuits.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Races handles GET /api/circuits/:id/races.
func (h *CircuitsHandler) Races(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	races, err := h.circuits.ListRaces(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(races, raceResponse))
}

func circuitFromRequest(c *fiber.Ctx) (*domain.Circuit, error) {
	var req dto.CircuitRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	errs := fieldErrors{}
	errs.requireName("name", req.Name)
	errs.requireName("city", req.City)
	errs.requireName("country", req.Country)
	if err := errs.err(); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.Circuit{Name: req.Name, City: req.City, Country: req.Country, Active: active}, nil
}
