package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/auth"
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
)

// AuthHandler handles login and first-run bootstrap.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Bootstrap POST /api/auth/bootstrap
//
// Creates the first admin account. Rejected once any user exists; after that
// accounts are managed through the protected /api/users routes.
func (h *AuthHandler) Bootstrap(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Bootstrap(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
