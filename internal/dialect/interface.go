package dialect

import "data-profiler/internal/table"

// ColumnDDL is one rendered column of a CREATE TABLE statement.
type ColumnDDL struct {
	Name string
	Type string
}

// Dialect abstracts warehouse-specific type mapping and DDL rendering.
type Dialect interface {
	Name() string

	// MapType maps a typed column (semantic kind + values) to the
	// warehouse column type string. It never fails: unmappable kinds
	// fall back to the dialect's default text type with a diagnostic.
	MapType(col *table.Column) string

	// GenerateDDL renders a full CREATE TABLE statement for the columns
	// in the given order.
	GenerateDDL(tableName string, cols []ColumnDDL) string
}
