package usecase

import (
	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
	"github.com/voyagetech/voyagecrm-api/internal/domain/repository"
)

// NotificationUseCase read/ack use cases for a user's notifications.
// Creation happens inside the agreement use case.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListForUser returns the user's notifications, newest first.
func (uc *NotificationUseCase) ListForUser(userID string, page dto.PageRequest) ([]*dto.NotificationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkRead flags one of the user's notifications as read.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
