package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat returned for file extensions outside .csv/.xlsx/.xls.
// It aborts the whole run before any row is processed.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parse converts an uploaded file into an ordered slice of header-keyed rows.
// The first non-blank row is the header; headers are lowercased and trimmed
// so lookups are case-insensitive. Blank rows are skipped. No schema is
// enforced here; missing columns read as empty downstream.
func Parse(filename string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseWorkbook(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func parseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows map to missing fields, not errors
	cr.TrimLeadingSpace = true

	var headers []string
	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if isBlank(record) {
			continue
		}
		if headers == nil {
			headers = normalizeHeaders(record)
			continue
		}
		rows = append(rows, recordToRow(headers, record))
	}
	return rows, nil
}

// parseWorkbook reads the first sheet only.
func parseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("parse workbook: no sheets")
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("parse workbook: %w", err)
	}

	var headers []string
	var rows []Row
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		if headers == nil {
			headers = normalizeHeaders(record)
			continue
		}
		rows = append(rows, recordToRow(headers, record))
	}
	return rows, nil
}

func normalizeHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

func recordToRow(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		// Duplicate headers: the first column wins.
		if _, seen := row[h]; seen {
			continue
		}
		if i < len(record) {
			row[h] = record[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
