package importer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagetech/voyagecrm-api/internal/application/importer"
)

func runCSV(t *testing.T, kind importer.Kind, creator *fakeCreator, csv string) (*importer.Session, reportResult) {
	t.Helper()
	session := importer.NewSession(kind, creator, creator, testLogger)
	report, err := session.Run(context.Background(), string(kind)+".csv", strings.NewReader(csv))
	require.NoError(t, err)
	return session, reportResult{report.Total, report.Succeeded, report.Failed}
}

type reportResult struct {
	total, succeeded, failed int
}

func TestSessionClientImportSuccess(t *testing.T) {
	creator := &fakeCreator{}
	csv := "name,industry,status\nAcme,airlines,active\n"

	session, got := runCSV(t, importer.KindClients, creator, csv)

	assert.Equal(t, reportResult{1, 1, 0}, got)
	assert.Equal(t, importer.StateComplete, session.State())
	require.Len(t, creator.clientReqs, 1)
	req := creator.clientReqs[0]
	assert.Equal(t, "Acme", req.Name)
	assert.Equal(t, "airlines", req.Industry)
	assert.Equal(t, "active", req.Status)
	assert.Empty(t, req.AssignedCSMID)
}

func TestSessionMissingNameFailsWithoutRequest(t *testing.T) {
	creator := &fakeCreator{}
	csv := "name,industry\n,airlines\n"

	session := importer.NewSession(importer.KindClients, creator, creator, testLogger)
	report, err := session.Run(context.Background(), "clients.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, creator.calls, "no create request may be issued for an invalid row")
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Client name is required", report.Rows[0].Error)
}

func TestSessionDuplicateEmailReportsFirstOccurrenceRow(t *testing.T) {
	creator := &fakeCreator{}
	csv := "name,industry,email\n" +
		"Acme,airlines,shared@acme.example\n" +
		"Beta,ota,SHARED@acme.example\n"

	session := importer.NewSession(importer.KindClients, creator, creator, testLogger)
	report, err := session.Run(context.Background(), "clients.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"Acme"}, creator.calls,
		"only the first occurrence may be submitted")
	assert.Equal(t, "Duplicate email found in row 2", report.Rows[1].Error)
}

func TestSessionServiceUnknownClientFails(t *testing.T) {
	creator := &fakeCreator{
		clientRefs: []importer.ClientRef{{ID: "c-1", Name: "Acme"}},
	}
	csv := "client_name,service_type,amount,currency\nNoSuchCo,hosting,100,USD\n"

	session := importer.NewSession(importer.KindServices, creator, creator, testLogger)
	report, err := session.Run(context.Background(), "services.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, creator.calls, "unresolved client must not reach the server")
	assert.Equal(t, "Client not found", report.Rows[0].Error)
}

func TestSessionServiceResolvesClientCaseInsensitively(t *testing.T) {
	creator := &fakeCreator{
		clientRefs: []importer.ClientRef{{ID: "c-1", Name: "Acme"}},
		userRefs:   []importer.UserRef{{ID: "u-9", Email: "csm@co.example"}},
	}
	csv := "client_name,service_type,amount,currency,csm_email\n" +
		"ACME,hosting,99.50,usd,csm@co.example\n" +
		"acme,subscription,10,EUR,nobody@co.example\n"

	_, got := runCSV(t, importer.KindServices, creator, csv)

	assert.Equal(t, reportResult{2, 2, 0}, got)
	require.Len(t, creator.serviceReqs, 2)
	assert.Equal(t, "c-1", creator.serviceReqs[0].ClientID)
	assert.Equal(t, "USD", creator.serviceReqs[0].Currency)
	assert.Equal(t, "u-9", creator.serviceReqs[0].AssignedCSMID)
	// Unresolved CSM email degrades to unassigned, not a failure.
	assert.Empty(t, creator.serviceReqs[1].AssignedCSMID)
}

func TestSessionServerFailureDoesNotAbortRemainingRows(t *testing.T) {
	creator := &fakeCreator{
		clientRefs: []importer.ClientRef{{ID: "c-1", Name: "Acme"}},
		failOn:     map[string]error{"CR-005": fmt.Errorf("record already exists")},
	}

	var sb strings.Builder
	sb.WriteString("client_name,cr_number,amount,currency,due_date\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&sb, "Acme,CR-%03d,100,USD,2025-12-01\n", i)
	}

	session := importer.NewSession(importer.KindCrInvoices, creator, creator, testLogger)
	report, err := session.Run(context.Background(), "cr-invoices.csv", strings.NewReader(sb.String()))
	require.NoError(t, err)

	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 9, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, creator.calls, 10, "every row must be attempted")

	completed, total := session.Progress()
	assert.Equal(t, total, completed, "progress must reach 100%")

	assert.False(t, report.Rows[4].Success)
	assert.Equal(t, "record already exists", report.Rows[4].Error)
	for i, row := range report.Rows {
		if i != 4 {
			assert.True(t, row.Success, "row %d should succeed", row.Row)
		}
	}
}

func TestSessionSubmitsInFileOrder(t *testing.T) {
	creator := &fakeCreator{}
	csv := "name,industry\nCharlie,ota\nAlpha,airlines\nBravo,gds\n"

	runCSV(t, importer.KindClients, creator, csv)

	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, creator.calls)
}

func TestSessionUnsupportedFormatAbortsRun(t *testing.T) {
	creator := &fakeCreator{}
	session := importer.NewSession(importer.KindClients, creator, creator, testLogger)

	_, err := session.Run(context.Background(), "clients.pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, importer.ErrUnsupportedFormat)
	assert.Empty(t, creator.calls)
}

func TestSessionRowNumbersIncludeHeaderOffset(t *testing.T) {
	creator := &fakeCreator{}
	csv := "name,industry\nAcme,airlines\nBeta,gds\n"

	session := importer.NewSession(importer.KindClients, creator, creator, testLogger)
	report, err := session.Run(context.Background(), "clients.csv", strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, 2, report.Rows[0].Row)
	assert.Equal(t, 3, report.Rows[1].Row)
	assert.Equal(t, "Acme", report.Rows[0].Label)
}
