package importer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/voyagetech/voyagecrm-api/internal/application/dto"
)

// ErrClientNotFound is the row-level failure for an unresolvable client name.
var ErrClientNotFound = errors.New("Client not found")

// MapClient builds the create payload for a validated client row. An
// unresolved CSM email degrades to an unassigned client, never a failure.
func MapClient(row Row, refs References) dto.CreateClientRequest {
	req := dto.CreateClientRequest{
		Name:     row.Get(colName),
		Industry: strings.ToLower(row.Get(colIndustry)),
		Status:   strings.ToLower(row.Get(colStatus)),
		Email:    row.Get(colEmail),
		Phone:    row.Get(colPhone),
		Address:  row.Get(colAddress),
		GSTTaxID: row.Get(colGSTTaxID),
	}
	if email := row.Get(colCSMEmail); email != "" {
		if id, ok := refs.resolveUserID(email); ok {
			req.AssignedCSMID = id
		}
	}
	return req
}

// MapService builds the create payload for a validated service row. The
// client name must resolve against the snapshot; the CSM email is optional
// and degrades like MapClient's.
func MapService(row Row, refs References) (dto.CreateServiceRequest, error) {
	clientID, ok := refs.resolveClientID(row.Get(colClientName))
	if !ok {
		return dto.CreateServiceRequest{}, ErrClientNotFound
	}
	req := dto.CreateServiceRequest{
		ClientID:     clientID,
		ServiceType:  strings.ToLower(row.Get(colServiceType)),
		Amount:       mustDecimal(row.Get(colAmount)),
		Currency:     strings.ToUpper(row.Get(colCurrency)),
		Recurring:    parseFlag(row.Get(colRecurring)),
		BillingCycle: strings.ToLower(row.Get(colBillingCycle)),
		StartDate:    row.Get(colStartDate),
		GoLiveDate:   row.Get(colGoLiveDate),
		InvoiceDate:  row.Get(colInvoiceDate),
	}
	if email := row.Get(colCSMEmail); email != "" {
		if id, ok := refs.resolveUserID(email); ok {
			req.AssignedCSMID = id
		}
	}
	return req, nil
}

// MapAgreement builds the create payload for a validated agreement row.
func MapAgreement(row Row, refs References) (dto.CreateAgreementRequest, error) {
	clientID, ok := refs.resolveClientID(row.Get(colClientName))
	if !ok {
		return dto.CreateAgreementRequest{}, ErrClientNotFound
	}
	return dto.CreateAgreementRequest{
		ClientID:    clientID,
		Name:        row.Get(colName),
		StartDate:   row.Get(colStartDate),
		EndDate:     row.Get(colEndDate),
		Value:       mustDecimal(row.Get(colValue)),
		Currency:    strings.ToUpper(row.Get(colCurrency)),
		Status:      strings.ToLower(row.Get(colStatus)),
		AutoRenewal: parseFlag(row.Get(colAutoRenewal)),
	}, nil
}

// MapUser builds the create payload for a validated user row.
func MapUser(row Row) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:    row.Get(colEmail),
		Username: row.Get(colUsername),
		Password: row.Get(colPassword),
		Name:     row.Get(colName),
		Role:     strings.ToLower(row.Get(colRole)),
		Status:   strings.ToLower(row.Get(colStatus)),
	}
}

// MapCrInvoice builds the create payload for a validated CR-invoice row.
func MapCrInvoice(row Row, refs References) (dto.CreateCrInvoiceRequest, error) {
	clientID, ok := refs.resolveClientID(row.Get(colClientName))
	if !ok {
		return dto.CreateCrInvoiceRequest{}, ErrClientNotFound
	}
	return dto.CreateCrInvoiceRequest{
		ClientID:    clientID,
		CrNumber:    row.Get(colCrNumber),
		Description: row.Get(colDescription),
		Amount:      mustDecimal(row.Get(colAmount)),
		Currency:    strings.ToUpper(row.Get(colCurrency)),
		Status:      strings.ToLower(row.Get(colStatus)),
		IssueDate:   row.Get(colIssueDate),
		DueDate:     row.Get(colDueDate),
	}, nil
}

// mustDecimal assumes the validator already accepted the value; a parse
// failure here maps to zero rather than a panic.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseFlag reads spreadsheet-friendly booleans.
func parseFlag(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}
