package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// First Formula One world championship season.
const minCarYear = 1949

// CarsHandler exposes car endpoints.
type CarsHandler struct {
	cars *service.CarService
}

// NewCarsHandler constructs handler.
func NewCarsHandler(carService *service.CarService) *CarsHandler {
	return &CarsHandler{cars: carService}
}

// List handles GET /api/cars.
func (h *CarsHandler) List(c *fiber.Ctx) error {
	cars, err := h.cars.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(cars, carResponse))
}

// Get handles GET /api/cars/:id.
func (h *CarsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	car, err := h.cars.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(carResponse(*car))
}

// Create handles POST /api/cars.
func (h *CarsHandler) Create(c *fiber.Ctx) error {
	car, err := carFromRequest(c)
	if err != nil {
		return err
	}
	created, err := h.cars.Create(c.UserContext(), car)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(carResponse(*created))
}

// Update handles PUT /api/cars/:id.
func (h *CarsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	car, err := carFromRequest(c)
	if err != nil {
		return err
	}
	car.ID = id
	updated, err := h.cars.Update(c.UserContext(), car)
	if err != nil {
		return err
	}
	return c.JSON(carResponse(*updated))
}

// Delete handles DELETE /api/cars/:id.
func (h *CarsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.cars.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Results handles GET /api/cars/:id/results.
func (h *CarsHandler) Results(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	results, err := h.cars.ListResults(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(results, resultResponse))
}

func carFromRequest(c *fiber.Ctx) (*domain.Car, error) {
	var req dto.CarRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	errs := fieldErrors{}
	errs.requireName("model", req.Model)
	errs.check(req.Weight > 0, "weight", "must be positive")
	errs.check(req.Year >= minCarYear, "year", "must be 1949 or later")
	errs.check(req.TeamID > 0, "team_id", "must be a positive integer")
	if err := errs.err(); err != nil {
		return nil, err
	}
	return &domain.Car{Model: req.Model, Weight: req.Weight, Year: req.Year, Team: domain.TeamRef{ID: req.TeamID}}, nil
}
