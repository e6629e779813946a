package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/voyagetech/voyagecrm-api/internal/domain/entity"
)

// Column headers shared by the validators, the mappers and the sample
// generator. Values are the normalized (lowercase) header names.
const (
	colName         = "name"
	colIndustry     = "industry"
	colStatus       = "status"
	colEmail        = "email"
	colPhone        = "phone"
	colAddress      = "address"
	colGSTTaxID     = "gst_tax_id"
	colCSMEmail     = "csm_email"
	colClientName   = "client_name"
	colServiceType  = "service_type"
	colAmount       = "amount"
	colCurrency     = "currency"
	colRecurring    = "recurring"
	colBillingCycle = "billing_cycle"
	colStartDate    = "start_date"
	colGoLiveDate   = "go_live_date"
	colInvoiceDate  = "invoice_date"
	colEndDate      = "end_date"
	colValue        = "value"
	colAutoRenewal  = "auto_renewal"
	colUsername     = "username"
	colPassword     = "password"
	colRole         = "role"
	colCrNumber     = "cr_number"
	colDescription  = "description"
	colIssueDate    = "issue_date"
	colDueDate      = "due_date"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Validate checks one row against the rule set for its kind and returns the
// first violated rule's message, or "" when the row is valid. Rules run in a
// fixed order: required fields, enum membership (case-insensitive), numeric
// parse, format checks, in-file duplicate scan. Only one error is ever
// reported per row.
func Validate(kind Kind, row Row, all []Row, idx int) string {
	switch kind {
	case KindClients:
		return validateClient(row, all, idx)
	case KindServices:
		return validateService(row)
	case KindAgreements:
		return validateAgreement(row)
	case KindUsers:
		return validateUser(row, all, idx)
	case KindCrInvoices:
		return validateCrInvoice(row)
	default:
		return fmt.Sprintf("unknown import kind %q", kind)
	}
}

func validateClient(row Row, all []Row, idx int) string {
	if row.Get(colName) == "" {
		return "Client name is required"
	}
	if row.Get(colIndustry) == "" {
		return "Industry is required"
	}
	if !oneOfFold(row.Get(colIndustry), entity.Industries) {
		return enumMessage("industry", entity.Industries)
	}
	if v := row.Get(colStatus); v != "" && !oneOfFold(v, entity.ClientStatuses) {
		return enumMessage("status", entity.ClientStatuses)
	}
	if v := row.Get(colEmail); v != "" && !emailRe.MatchString(v) {
		return "Invalid email format"
	}
	if n := duplicateRow(all, idx, colName); n > 0 {
		return fmt.Sprintf("Duplicate name found in row %d", n)
	}
	if n := duplicateRow(all, idx, colEmail); n > 0 {
		return fmt.Sprintf("Duplicate email found in row %d", n)
	}
	if n := duplicateRow(all, idx, colGSTTaxID); n > 0 {
		return fmt.Sprintf("Duplicate GST/Tax ID found in row %d", n)
	}
	return ""
}

func validateService(row Row) string {
	if row.Get(colClientName) == "" {
		return "Client name is required"
	}
	if row.Get(colServiceType) == "" {
		return "Service type is required"
	}
	if row.Get(colAmount) == "" {
		return "Amount is required"
	}
	if row.Get(colCurrency) == "" {
		return "Currency is required"
	}
	if !oneOfFold(row.Get(colServiceType), entity.ServiceTypes) {
		return enumMessage("service type", entity.ServiceTypes)
	}
	if !oneOfFold(row.Get(colCurrency), entity.Currencies) {
		return enumMessage("currency", entity.Currencies)
	}
	if v := row.Get(colBillingCycle); v != "" && !oneOfFold(v, entity.BillingCycles) {
		return enumMessage("billing cycle", entity.BillingCycles)
	}
	if !isNumeric(row.Get(colAmount)) {
		return "Amount must be a valid number"
	}
	if v := row.Get(colCSMEmail); v != "" && !emailRe.MatchString(v) {
		return "Invalid CSM email format"
	}
	for _, col := range []string{colStartDate, colGoLiveDate, colInvoiceDate} {
		if v := row.Get(col); v != "" && !isDate(v) {
			return fmt.Sprintf("Invalid %s format", strings.ReplaceAll(col, "_", " "))
		}
	}
	return ""
}

func validateAgreement(row Row) string {
	if row.Get(colClientName) == "" {
		return "Client name is required"
	}
	if row.Get(colName) == "" {
		return "Agreement name is required"
	}
	if row.Get(colStartDate) == "" {
		return "Start date is required"
	}
	if row.Get(colEndDate) == "" {
		return "End date is required"
	}
	if row.Get(colValue) == "" {
		return "Value is required"
	}
	if row.Get(colCurrency) == "" {
		return "Currency is required"
	}
	if !oneOfFold(row.Get(colCurrency), entity.Currencies) {
		return enumMessage("currency", entity.Currencies)
	}
	if v := row.Get(colStatus); v != "" && !oneOfFold(v, entity.AgreementStatuses) {
		return enumMessage("status", entity.AgreementStatuses)
	}
	if !isNumeric(row.Get(colValue)) {
		return "Value must be a valid number"
	}
	if !isDate(row.Get(colStartDate)) {
		return "Invalid start date format"
	}
	if !isDate(row.Get(colEndDate)) {
		return "Invalid end date format"
	}
	return ""
}

func validateUser(row Row, all []Row, idx int) string {
	if row.Get(colEmail) == "" {
		return "Email is required"
	}
	if row.Get(colUsername) == "" {
		return "Username is required"
	}
	if row.Get(colPassword) == "" {
		return "Password is required"
	}
	if row.Get(colRole) == "" {
		return "Role is required"
	}
	if !oneOfFold(row.Get(colRole), entity.Roles) {
		return enumMessage("role", entity.Roles)
	}
	if v := row.Get(colStatus); v != "" && !oneOfFold(v, entity.UserStatuses) {
		return enumMessage("status", entity.UserStatuses)
	}
	if !emailRe.MatchString(row.Get(colEmail)) {
		return "Invalid email format"
	}
	if n := duplicateRow(all, idx, colEmail); n > 0 {
		return fmt.Sprintf("Duplicate email found in row %d", n)
	}
	if n := duplicateRow(all, idx, colUsername); n > 0 {
		return fmt.Sprintf("Duplicate username found in row %d", n)
	}
	return ""
}

func validateCrInvoice(row Row) string {
	if row.Get(colClientName) == "" {
		return "Client name is required"
	}
	if row.Get(colCrNumber) == "" {
		return "CR number is required"
	}
	if row.Get(colAmount) == "" {
		return "Amount is required"
	}
	if row.Get(colCurrency) == "" {
		return "Currency is required"
	}
	if row.Get(colDueDate) == "" {
		return "Due date is required"
	}
	if !oneOfFold(row.Get(colCurrency), entity.Currencies) {
		return enumMessage("currency", entity.Currencies)
	}
	if v := row.Get(colStatus); v != "" && !oneOfFold(v, entity.CrInvoiceStatuses) {
		return enumMessage("status", entity.CrInvoiceStatuses)
	}
	if !isNumeric(row.Get(colAmount)) {
		return "Amount must be a valid number"
	}
	if v := row.Get(colIssueDate); v != "" && !isDate(v) {
		return "Invalid issue date format"
	}
	if !isDate(row.Get(colDueDate)) {
		return "Invalid due date format"
	}
	return ""
}

func oneOfFold(value string, options []string) bool {
	for _, o := range options {
		if strings.EqualFold(value, o) {
			return true
		}
	}
	return false
}

func enumMessage(field string, options []string) string {
	return fmt.Sprintf("Invalid %s. Valid options: %s", field, strings.Join(options, ", "))
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// duplicateRow scans rows BEFORE idx for a case-insensitive match on col and
// returns the conflicting row's spreadsheet number (1-based data index plus
// the header row), or 0 when there is no conflict. Only earlier rows are
// scanned so the first occurrence stays valid and later ones fail.
func duplicateRow(all []Row, idx int, col string) int {
	v := all[idx].Get(col)
	if v == "" {
		return 0
	}
	for j := 0; j < idx; j++ {
		if strings.EqualFold(all[j].Get(col), v) {
			return j + 2
		}
	}
	return 0
}
