package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// ResultsHandler exposes result endpoints.
type ResultsHandler struct {
	results *service.ResultService
}

// NewResultsHandler constructs handler.
func NewResultsHandler(resultService *service.ResultService) *ResultsHandler {
	return &ResultsHandler{results: resultService}
}

// List handles GET /api/results.
func (h *ResultsHandler) List(c *fiber.Ctx) error {
	results, err := h.results.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(results, resultResponse))
}

// Get handles GET /api/results/:id.
func (h *ResultsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result, err := h.results.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resultResponse(*result))
}

// Create handles POST /api/results.
func (h *ResultsHandler) Create(c *fiber.Ctx) error {
	result, err := resultFromRequest(c)
	if err != nil {
		return err
	}
	created, err := h.results.Create(c.UserContext(), result)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resultResponse(*created))
}

// Update handles PUT /api/results/:id.
func (h *ResultsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result, err := resultFromRequest(c)
	if err != nil {
		return err
	}
	result.ID = id
	updated, err := h.results.Update(c.UserContext(), result)
	if err != nil {
		return err
	}
	return c.JSON(resultResponse(*updated))
}

// Delete handles DELETE /api/results/:id.
func (h *ResultsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.results.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func resultFromRequest(c *fiber.Ctx) (*domain.Result, error) {
	var req dto.ResultRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	errs := fieldErrors{}
	errs.check(req.Position > 0, "position", "must be a positive integer")
	errs.check(req.Points >= 0, "points", "must not be negative")
	errs.check(req.RaceID > 0, "race_id", "must be a positive integer")
	errs.check(req.DriverID > 0, "driver_id", "must be a positive integer")
	errs.check(req.CarID == nil || *req.CarID > 0, "car_id", "must be a positive integer")
	if err := errs.err(); err != nil {
		return nil, err
	}
	return &domain.Result{
		Position: req.Position,
		Points:   req.Points,
		Status:   req.Status,
		RaceID:   req.RaceID,
		DriverID: req.DriverID,
		CarID:    req.CarID,
	}, nil
}
