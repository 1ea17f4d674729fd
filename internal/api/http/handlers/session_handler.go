package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/service"
)

// SessionHandler exposes login.
type SessionHandler struct {
	auth *service.AuthService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{auth: authService}
}

// Login handles POST /api/sessions.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	errs := fieldErrors{}
	errs.requireEmail("email", req.Email)
	errs.check(req.Password != "", "password", "is required")
	if err := errs.err(); err != nil {
		return err
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{Token: token})
}
