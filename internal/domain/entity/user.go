package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin   = "admin"
	RoleFinance = "finance"
	RoleCSM     = "csm"
	RoleViewer  = "viewer"
)

// User statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Roles lists the valid values for User.Role.
var Roles = []string{RoleAdmin, RoleFinance, RoleCSM, RoleViewer}

// UserStatuses lists the valid values for User.Status.
var UserStatuses = []string{UserStatusActive, UserStatusInactive}

// User is a system user. Email and Username are unique. Role drives the
// RBAC checks in the HTTP layer.
type User struct {
	ID           string
	Email        string
	Username     string
	Name         string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // admin, finance, csm, viewer
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
