package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
)

// AgreementHandler handles agreement CRUD requests. Creation also triggers
// the in-app notification and the email side effect inside the use case.
type AgreementHandler struct {
	uc *usecase.AgreementUseCase
}

// NewAgreementHandler builds the handler.
func NewAgreementHandler(uc *usecase.AgreementUseCase) *AgreementHandler {
	return &AgreementHandler{uc: uc}
}

// Create POST /api/agreements
func (h *AgreementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAgreementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	agreement, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(agreement)
}

// List GET /api/agreements?limit=20&offset=0
func (h *AgreementHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/agreements/:id
func (h *AgreementHandler) GetByID(c *fiber.Ctx) error {
	agreement, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(agreement)
}

// Update PUT /api/agreements/:id
func (h *AgreementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgreementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	agreement, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(agreement)
}

// Delete DELETE /api/agreements/:id
func (h *AgreementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
