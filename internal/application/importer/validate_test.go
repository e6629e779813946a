package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
)

func validateOne(kind importer.Kind, row importer.Row) string {
	return importer.Validate(kind, row, []importer.Row{row}, 0)
}

func TestValidateClient(t *testing.T) {
	cases := []struct {
		name string
		row  importer.Row
		want string
	}{
		{
			name: "valid",
			row:  importer.Row{"name": "Acme", "industry": "airlines", "status": "active"},
			want: "",
		},
		{
			name: "enum is case-insensitive",
			row:  importer.Row{"name": "Acme", "industry": "AIRLINES"},
			want: "",
		},
		{
			name: "missing name",
			row:  importer.Row{"industry": "airlines"},
			want: "Client name is required",
		},
		{
			name: "whitespace-only name",
			row:  importer.Row{"name": "   ", "industry": "airlines"},
			want: "Client name is required",
		},
		{
			name: "missing industry",
			row:  importer.Row{"name": "Acme"},
			want: "Industry is required",
		},
		{
			name: "bad industry",
			row:  importer.Row{"name": "Acme", "industry": "banking"},
			want: "Invalid industry. Valid options: airlines, travel_agency, gds, ota, aviation_services",
		},
		{
			name: "bad status",
			row:  importer.Row{"name": "Acme", "industry": "airlines", "status": "paused"},
			want: "Invalid status. Valid options: active, inactive",
		},
		{
			name: "bad email",
			row:  importer.Row{"name": "Acme", "industry": "airlines", "email": "not an email"},
			want: "Invalid email format",
		},
		{
			name: "empty optional fields pass",
			row:  importer.Row{"name": "Acme", "industry": "airlines", "email": "", "status": ""},
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateOne(importer.KindClients, tc.row))
		})
	}
}

func TestValidateClientFirstRuleWins(t *testing.T) {
	// Missing name AND bad industry: only the required check may be reported.
	row := importer.Row{"industry": "banking"}
	assert.Equal(t, "Client name is required", validateOne(importer.KindClients, row))
}

func TestValidateClientDuplicates(t *testing.T) {
	rows := []importer.Row{
		{"name": "Acme", "industry": "airlines", "email": "a@co.example", "gst_tax_id": "GST1"},
		{"name": "acme", "industry": "gds"},
		{"name": "Beta", "industry": "gds", "email": "A@CO.EXAMPLE"},
		{"name": "Gamma", "industry": "ota", "gst_tax_id": "gst1"},
	}

	assert.Equal(t, "", importer.Validate(importer.KindClients, rows[0], rows, 0))
	assert.Equal(t, "Duplicate name found in row 2", importer.Validate(importer.KindClients, rows[1], rows, 1))
	assert.Equal(t, "Duplicate email found in row 2", importer.Validate(importer.KindClients, rows[2], rows, 2))
	assert.Equal(t, "Duplicate GST/Tax ID found in row 2", importer.Validate(importer.KindClients, rows[3], rows, 3))
}

func TestValidateService(t *testing.T) {
	cases := []struct {
		name string
		row  importer.Row
		want string
	}{
		{
			name: "valid",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "amount": "1200.50", "currency": "USD"},
			want: "",
		},
		{
			name: "missing client name",
			row:  importer.Row{"service_type": "hosting", "amount": "10", "currency": "USD"},
			want: "Client name is required",
		},
		{
			name: "missing amount",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "currency": "USD"},
			want: "Amount is required",
		},
		{
			name: "non-numeric amount",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "amount": "lots", "currency": "USD"},
			want: "Amount must be a valid number",
		},
		{
			name: "bad service type",
			row:  importer.Row{"client_name": "Acme", "service_type": "consulting", "amount": "10", "currency": "USD"},
			want: "Invalid service type. Valid options: implementation, cr, subscription, hosting, others",
		},
		{
			name: "bad currency",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "amount": "10", "currency": "GBP"},
			want: "Invalid currency. Valid options: INR, USD, EUR",
		},
		{
			name: "bad billing cycle",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "amount": "10", "currency": "USD", "billing_cycle": "weekly"},
			want: "Invalid billing cycle. Valid options: monthly, quarterly, yearly",
		},
		{
			name: "bad start date",
			row:  importer.Row{"client_name": "Acme", "service_type": "hosting", "amount": "10", "currency": "USD", "start_date": "01/02/2025"},
			want: "Invalid start date format",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validateOne(importer.KindServices, tc.row))
		})
	}
}

func TestValidateAgreement(t *testing.T) {
	valid := importer.Row{
		"client_name": "Acme", "name": "MSA", "start_date": "2025-01-01",
		"end_date": "2026-01-01", "value": "1000", "currency": "INR",
	}
	assert.Equal(t, "", validateOne(importer.KindAgreements, valid))

	missingName := importer.Row{
		"client_name": "Acme", "start_date": "2025-01-01",
		"end_date": "2026-01-01", "value": "1000", "currency": "INR",
	}
	assert.Equal(t, "Agreement name is required", validateOne(importer.KindAgreements, missingName))

	badValue := importer.Row{
		"client_name": "Acme", "name": "MSA", "start_date": "2025-01-01",
		"end_date": "2026-01-01", "value": "a lot", "currency": "INR",
	}
	assert.Equal(t, "Value must be a valid number", validateOne(importer.KindAgreements, badValue))
}

func TestValidateUser(t *testing.T) {
	valid := importer.Row{"email": "a@co.example", "username": "a", "password": "pw", "role": "csm"}
	assert.Equal(t, "", validateOne(importer.KindUsers, valid))

	badRole := importer.Row{"email": "a@co.example", "username": "a", "password": "pw", "role": "owner"}
	assert.Equal(t, "Invalid role. Valid options: admin, finance, csm, viewer", validateOne(importer.KindUsers, badRole))

	badEmail := importer.Row{"email": "a@co", "username": "a", "password": "pw", "role": "csm"}
	assert.Equal(t, "Invalid email format", validateOne(importer.KindUsers, badEmail))

	rows := []importer.Row{
		{"email": "a@co.example", "username": "alpha", "password": "pw", "role": "csm"},
		{"email": "b@co.example", "username": "ALPHA", "password": "pw", "role": "csm"},
	}
	assert.Equal(t, "Duplicate username found in row 2", importer.Validate(importer.KindUsers, rows[1], rows, 1))
}

func TestValidateCrInvoice(t *testing.T) {
	valid := importer.Row{
		"client_name": "Acme", "cr_number": "CR-1", "amount": "100",
		"currency": "USD", "due_date": "2025-12-01",
	}
	assert.Equal(t, "", validateOne(importer.KindCrInvoices, valid))

	missingCr := importer.Row{
		"client_name": "Acme", "amount": "100", "currency": "USD", "due_date": "2025-12-01",
	}
	assert.Equal(t, "CR number is required", validateOne(importer.KindCrInvoices, missingCr))

	badStatus := importer.Row{
		"client_name": "Acme", "cr_number": "CR-1", "amount": "100",
		"currency": "USD", "due_date": "2025-12-01", "status": "done",
	}
	assert.Equal(t, "Invalid status. Valid options: initiated, pending, approved", validateOne(importer.KindCrInvoices, badStatus))
}
