package dto

// RowError reports a single failed spreadsheet row. Duplicate national ids
// are a distinguished class and carry the offending value.
type RowError struct {
	Row       int    `json:"row"` // 1-based sheet row number
	Message   string `json:"message"`
	Duplicate bool   `json:"duplicate,omitempty"`
	CIN       string `json:"cin,omitempty"`
}

// ImportResult summarizes a spreadsheet import batch. Updated is only
// populated by the participant importer.
type ImportResult struct {
	Imported int        `json:"imported"`
	Updated  int        `json:"updated"`
	Skipped  int        `json:"skipped"` // fully blank rows, counted apart from errors
	Errors   []RowError `json:"errors"`
}

// Succeeded reports whether at least one row was written, which is the
// commit condition for the batch transaction.
func (r *ImportResult) Succeeded() bool {
	return r.Imported+r.Updated > 0
}
