package dialect

import (
	"fmt"
	"log"
	"strings"

	"data-profiler/internal/table"
)

type BigQueryDialect struct {
	// Optional qualifiers for the table name. With both set the DDL
	// targets `project.dataset.table`; with only DatasetID,
	// `dataset.table`; with neither, `table`.
	ProjectID string
	DatasetID string
}

func (d *BigQueryDialect) Name() string { return "bigquery" }

func (d *BigQueryDialect) MapType(col *table.Column) string {
	switch col.Kind {
	case table.KindInteger:
		return "INTEGER"
	case table.KindDecimal:
		return "NUMERIC"
	case table.KindText, table.KindCategorical:
		return "STRING"
	case table.KindBoolean:
		return "BOOLEAN"
	case table.KindDate:
		return "DATE"
	case table.KindTimestamp:
		return "TIMESTAMP"
	default:
		log.Printf("bigquery: could not determine type for column %q (%s), defaulting to STRING", col.Name, col.Kind)
		return "STRING"
	}
}

func (d *BigQueryDialect) GenerateDDL(tableName string, cols []ColumnDDL) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("  `%s` %s", c.Name, c.Type)
	}
	return fmt.Sprintf("CREATE OR REPLACE TABLE %s (\n%s\n);", d.qualifiedName(tableName), strings.Join(defs, ",\n"))
}

func (d *BigQueryDialect) qualifiedName(tableName string) string {
	switch {
	case d.ProjectID != "" && d.DatasetID != "":
		return fmt.Sprintf("`%s.%s.%s`", d.ProjectID, d.DatasetID, tableName)
	case d.DatasetID != "":
		return fmt.Sprintf("`%s.%s`", d.DatasetID, tableName)
	default:
		return fmt.Sprintf("`%s`", tableName)
	}
}
