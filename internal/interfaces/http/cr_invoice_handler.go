package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
)

// CrInvoiceHandler handles change-request invoice CRUD plus PDF rendering.
type CrInvoiceHandler struct {
	uc    *usecase.CrInvoiceUseCase
	pdfUC *usecase.CrInvoicePDFUseCase
}

// NewCrInvoiceHandler builds the handler.
func NewCrInvoiceHandler(uc *usecase.CrInvoiceUseCase, pdfUC *usecase.CrInvoicePDFUseCase) *CrInvoiceHandler {
	return &CrInvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/cr-invoices
func (h *CrInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCrInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/cr-invoices?limit=20&offset=0
func (h *CrInvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/cr-invoices/:id
func (h *CrInvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// Update PUT /api/cr-invoices/:id
func (h *CrInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCrInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/cr-invoices/:id
func (h *CrInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/cr-invoices/:id/pdf
func (h *CrInvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
