package entity

import "time"

// Industries served by the vendor.
const (
	IndustryAirlines         = "airlines"
	IndustryTravelAgency     = "travel_agency"
	IndustryGDS              = "gds"
	IndustryOTA              = "ota"
	IndustryAviationServices = "aviation_services"
)

// Client statuses.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Industries lists the valid values for Client.Industry, in display order.
var Industries = []string{
	IndustryAirlines,
	IndustryTravelAgency,
	IndustryGDS,
	IndustryOTA,
	IndustryAviationServices,
}

// ClientStatuses lists the valid values for Client.Status.
var ClientStatuses = []string{ClientStatusActive, ClientStatusInactive}

// Client is a B2B customer account. Deleting a client cascades to its
// services, agreements and invoices (FK ON DELETE CASCADE).
type Client struct {
	ID            string
	Name          string
	Industry      string // airlines, travel_agency, gds, ota, aviation_services
	Status        string // active, inactive
	Email         string
	Phone         string
	Address       string
	GSTTaxID      string
	AssignedCSMID string // optional: User acting as relationship manager
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
