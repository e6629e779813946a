package dto

// ImportRowResult per-row outcome of a bulk import. Row is the 1-based
// spreadsheet row number including the header offset (first data row = 2).
type ImportRowResult struct {
	Row     int    `json:"row"`
	Label   string `json:"label"` // identifying value: client name, email, CR number
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ImportReportDTO aggregate outcome for POST /api/imports/:kind.
type ImportReportDTO struct {
	Kind      string            `json:"kind"`
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Rows      []ImportRowResult `json:"rows"`
}
