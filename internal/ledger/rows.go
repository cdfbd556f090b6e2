package ledger

// Row is one unit of fetched data: either a structured record whose Values
// align with the RowSet's Columns, or an opaque text line. Malformed records
// (field count mismatch) keep their raw text and are flagged so the view can
// render a sentinel instead of failing.
type Row struct {
	Text      string
	Values    []string
	Malformed bool
}

// Get returns the value of the named column, or "" when the row has no such
// field.
func (r Row) Get(columns []string, name string) string {
	for i, c := range columns {
		if c == name && i < len(r.Values) {
			return r.Values[i]
		}
	}
	return ""
}

// RowSet is the ordered result of one fetch. It is owned by exactly one view
// and replaced wholesale on every reload.
type RowSet struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (rs RowSet) Len() int { return len(rs.Rows) }
