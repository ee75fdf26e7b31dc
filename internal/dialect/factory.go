package dialect

import "fmt"

// Options carry dialect-specific settings; only BigQuery consumes them.
type Options struct {
	ProjectID string
	DatasetID string
}

// GetDialect returns the Dialect implementation for the given name. The
// dialect set is closed: oracle and bigquery.
func GetDialect(name string, opts Options) (Dialect, error) {
	switch name {
	case "oracle":
		return &OracleDialect{}, nil
	case "bigquery":
		return &BigQueryDialect{ProjectID: opts.ProjectID, DatasetID: opts.DatasetID}, nil
	default:
		return nil, fmt.Errorf("unsupported dialect %q (expected oracle or bigquery)", name)
	}
}

// Ensure interface implementation
var _ Dialect = (*OracleDialect)(nil)
var _ Dialect = (*BigQueryDialect)(nil)
