package entity

import "time"

// Notification types.
const (
	NotificationAgreementCreated = "agreement_created"
)

// Notification is an in-app message for a User, optionally tied to a Client.
// Created as a side effect of agreement creation.
type Notification struct {
	ID        string
	UserID    string
	ClientID  string // optional
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}
