package dto

import "time"

// CreateClientRequest body for POST /api/clients.
type CreateClientRequest struct {
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Status        string `json:"status,omitempty"` // defaults to active
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	GSTTaxID      string `json:"gst_tax_id,omitempty"`
	AssignedCSMID string `json:"assigned_csm_id,omitempty"`
}

// UpdateClientRequest body for PUT /api/clients/:id. Same shape as create.
type UpdateClientRequest = CreateClientRequest

// ClientResponse client in responses.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	Status        string    `json:"status"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	GSTTaxID      string    `json:"gst_tax_id,omitempty"`
	AssignedCSMID string    `json:"assigned_csm_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
