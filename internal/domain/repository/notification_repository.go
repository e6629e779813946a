package repository

import "github.com/voyagetech/voyagecrm-api/internal/domain/entity"

// NotificationRepository defines the persistence port for Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID string) error
}
