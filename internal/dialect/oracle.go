package dialect

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"data-profiler/internal/table"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

func (d *OracleDialect) MapType(col *table.Column) string {
	if col.AllNull() {
		return "VARCHAR2(1)"
	}

	switch col.Kind {
	case table.KindInteger:
		return fmt.Sprintf("NUMBER(%d)", maxRenderLength(col))

	case table.KindDecimal:
		return fmt.Sprintf("NUMBER(%d,2)", decimalPrecision(col))

	case table.KindDate:
		return "DATE"

	case table.KindTimestamp:
		return "TIMESTAMP"

	case table.KindText, table.KindCategorical:
		maxLen := maxRenderLength(col)
		if maxLen == 0 {
			// Entirely empty-string text.
			return "VARCHAR2(1)"
		}
		if allSameRenderLength(col, maxLen) {
			return fmt.Sprintf("CHAR(%d)", maxLen)
		}
		return fmt.Sprintf("VARCHAR2(%d)", maxLen)

	default:
		log.Printf("oracle: could not determine type for column %q (%s), defaulting to VARCHAR2(255)", col.Name, col.Kind)
		return "VARCHAR2(255)"
	}
}

func (d *OracleDialect) GenerateDDL(tableName string, cols []ColumnDDL) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("  %q %s", c.Name, c.Type)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", tableName, strings.Join(defs, ",\n"))
}

// maxRenderLength is the longest string rendering among non-null values.
func maxRenderLength(col *table.Column) int {
	max := 0
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if n := utf8.RuneCountInString(v.Render()); n > max {
			max = n
		}
	}
	return max
}

func allSameRenderLength(col *table.Column, want int) bool {
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if utf8.RuneCountInString(v.Render()) != want {
			return false
		}
	}
	return true
}

// decimalPrecision is the digit length of the largest absolute integer
// part, plus 2 for the fixed decimal places.
func decimalPrecision(col *table.Column) int {
	maxDigits := 1
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		intPart := v.Decimal().Abs().Truncate(0)
		if n := len(intPart.String()); n > maxDigits {
			maxDigits = n
		}
	}
	return maxDigits + 2
}
