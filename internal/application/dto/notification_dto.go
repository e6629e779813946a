package dto

import "time"

// NotificationResponse notification in responses.
type NotificationResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
