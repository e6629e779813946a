package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/voyagetech/voyagecrm-api/internal/application/usecase"
)

// NotificationHandler handles the authenticated user's notification feed.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler builds the handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List GET /api/notifications?limit=20&offset=0
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListForUser(GetUserID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// MarkRead PUT /api/notifications/:id/read
//
// Scoped to the authenticated user; another user's notification id yields
// 404, not 403, so ids are not probeable.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
