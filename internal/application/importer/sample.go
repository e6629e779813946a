package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sampleSheets header plus example rows per kind. Example rows must pass the
// kind's validator so a downloaded template re-imports cleanly.
var sampleSheets = map[Kind][][]string{
	KindClients: {
		{colName, colIndustry, colStatus, colEmail, colPhone, colAddress, colGSTTaxID, colCSMEmail},
		{"Skyline Airways", "airlines", "active", "ops@skylineairways.example", "+91 98100 11223", "12 MG Road, Bengaluru", "29AABCS1429B1Z1", "priya@voyagetech.example"},
		{"Globetrot Travels", "travel_agency", "active", "contact@globetrot.example", "+1 415 555 0180", "440 Market St, San Francisco", "", ""},
	},
	KindServices: {
		{colClientName, colServiceType, colAmount, colCurrency, colRecurring, colBillingCycle, colCSMEmail, colStartDate, colGoLiveDate, colInvoiceDate},
		{"Skyline Airways", "implementation", "250000", "INR", "no", "", "priya@voyagetech.example", "2025-01-15", "2025-04-01", ""},
		{"Skyline Airways", "subscription", "4500", "USD", "yes", "monthly", "", "2025-04-01", "", "2025-04-05"},
	},
	KindAgreements: {
		{colClientName, colName, colStartDate, colEndDate, colValue, colCurrency, colStatus, colAutoRenewal},
		{"Skyline Airways", "Reservation Platform MSA", "2025-01-01", "2026-12-31", "500000", "INR", "active", "yes"},
	},
	KindUsers: {
		{colEmail, colUsername, colPassword, colName, colRole, colStatus},
		{"priya@voyagetech.example", "priya.n", "ChangeMe!2025", "Priya Narayan", "csm", "active"},
		{"marco@voyagetech.example", "marco.r", "ChangeMe!2025", "Marco Rossi", "finance", "active"},
	},
	KindCrInvoices: {
		{colClientName, colCrNumber, colDescription, colAmount, colCurrency, colStatus, colIssueDate, colDueDate},
		{"Skyline Airways", "CR-2025-014", "GDS feed format change", "12000", "USD", "initiated", "2025-06-01", "2025-07-01"},
	},
}

// Sample renders the template workbook for a kind: one sheet, header row,
// a few filled example rows.
func Sample(kind Kind) ([]byte, string, error) {
	sheet, ok := sampleSheets[kind]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	for i, record := range sheet {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, "", fmt.Errorf("sample %s: %w", kind, err)
		}
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return nil, "", fmt.Errorf("sample %s: %w", kind, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("sample %s: %w", kind, err)
	}
	return buf.Bytes(), fmt.Sprintf("%s-import-sample.xlsx", kind), nil
}
