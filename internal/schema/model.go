package schema

import "strings"

// Entry holds the derived metadata of one column of the target schema.
type Entry struct {
	Type     string // dialect-specific column type
	Length   int    // max string-rendering length of non-null values; 0 iff all null
	Nullable bool

	// AllowedValues lists the categories of a categorical column or the
	// distinct literals of a boolean column. Nil otherwise.
	AllowedValues []string
	// Stats is the summary string of a numeric or date column. Empty
	// otherwise.
	Stats string
}

// Descriptor renders the allowed-values/stats cell of the schema report.
func (e *Entry) Descriptor() string {
	if len(e.AllowedValues) > 0 {
		return strings.Join(e.AllowedValues, ", ")
	}
	return e.Stats
}
