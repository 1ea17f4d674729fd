package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/service"
)

// DriversHandler exposes registration and driver profile endpoints.
type DriversHandler struct {
	auth    *service.AuthService
	drivers *service.DriverService
}

// NewDriversHandler constructs handler.
func NewDriversHandler(authService *service.AuthService, driverService *service.DriverService) *DriversHandler {
	return &DriversHandler{auth: authService, drivers: driverService}
}

// Register handles POST /api/drivers.
func (h *DriversHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	errs := fieldErrors{}
	errs.requireName("first_name", req.FirstName)
	errs.requireName("last_name", req.LastName)
	errs.requireEmail("email", req.Email)
	errs.check(req.Password != "", "password", "is required")
	errs.check(req.TeamID == nil || *req.TeamID > 0, "team_id", "must be a positive integer")
	if err := errs.err(); err != nil {
		return err
	}

	profile := domain.DriverProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    req.Status,
		TeamID:    req.TeamID,
	}
	token, err := h.auth.Register(c.UserContext(), profile, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: token})
}

// List handles GET /api/drivers.
func (h *DriversHandler) List(c *fiber.Ctx) error {
	drivers, err := h.drivers.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(listOf(drivers, driverResponse))
}

// Get handles GET /api/drivers/:id.
func (h *DriversHandler) Get(c *fiber.Ctx) error {
	id, err := auth.ResolveDriverID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	driver, err := h.drivers.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(driverResponse(*driver))
}

// Update handles PUT /api/drivers/:id.
func (h *DriversHandler) Update(c *fiber.Ctx) error {
	id, err := auth.ResolveDriverID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.UpdateDriverRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	errs := fieldErrors{}
	errs.requireName("first_name", req.FirstName)
	errs.requireName("last_name", req.LastName)
	errs.check(req.TeamID == nil || *req.TeamID > 0, "team_id", "must be a positive integer")
	if err := errs.err(); err != nil {
		return err
	}

	driver, err := h.drivers.UpdateProfile(c.UserContext(), id, domain.DriverProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    req.Status,
		TeamID:    req.TeamID,
	})
	if err != nil {
		return err
	}
	return c.JSON(driverResponse(*driver))
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriversHandler) Delete(c *fiber.Ctx) error {
	id, err := auth.ResolveDriverID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.drivers.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Results handles GET /api/drivers/:id/results.
func (h *DriversHandler) Results(c *fiber.Ctx) error {
	id, err := auth.ResolveDriverID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	results, err := h.drivers.ListResults(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(listOf(results, resultResponse))
}

// ChangePassword handles PUT /api/drivers/:id/password.
func (h *DriversHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := auth.ResolveDriverID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	errs := fieldErrors{}
	errs.check(req.CurrentPassword != "", "current_password", "is required")
	errs.check(req.NewPassword != "", "new_password", "is required")
	if err := errs.err(); err != nil {
		return err
	}

	if err := h.auth.ChangePassword(c.UserContext(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
