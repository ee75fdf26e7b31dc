package detect

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"data-profiler/internal/table"
)

// numericSampleLimit bounds how many non-null values are inspected when
// inferring the decimal separator.
const numericSampleLimit = 1000

// NumericConversionStep attempts to convert each unresolved column to
// integer or decimal. Conversion is atomic per column: a single value that
// fails to parse leaves the column untouched.
type NumericConversionStep struct {
	cfg KeywordConfig
}

func NewNumericStep(cfg KeywordConfig) *NumericConversionStep {
	return &NumericConversionStep{cfg: cfg}
}

func (s *NumericConversionStep) Name() string { return "numeric" }

func (s *NumericConversionStep) Apply(t *table.Table) (*table.Table, error) {
	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}

		sep := inferDecimalSeparator(col)
		parsed, ok := parseNumericColumn(col, sep)
		if !ok {
			continue
		}

		allInt := true
		for _, d := range parsed {
			if d == nil {
				continue
			}
			// Values past the int64 range stay decimal to avoid truncation.
			if !d.IsInteger() || !d.BigInt().IsInt64() {
				allInt = false
				break
			}
		}

		if allInt {
			for i, d := range parsed {
				if d == nil {
					col.Values[i] = table.Null()
				} else {
					col.Values[i] = table.IntValue(d.IntPart())
				}
			}
			col.Kind = table.KindInteger
			log.Printf("column %q converted to integer (decimal separator %q)", col.Name, sep)
		} else {
			for i, d := range parsed {
				if d == nil {
					col.Values[i] = table.Null()
				} else {
					col.Values[i] = table.DecimalValue(d.Round(2))
				}
			}
			col.Kind = table.KindDecimal
			log.Printf("column %q converted to decimal (decimal separator %q)", col.Name, sep)
		}
	}
	return next, nil
}

// inferDecimalSeparator samples up to numericSampleLimit non-null values
// and compares how many contain ',' versus '.'. The more frequent symbol
// is the decimal separator, the other a thousands separator. On a tie the
// symbol appearing last inside a value wins: in "1.500,75" the comma is
// the decimal separator, in "1,500.75" the dot.
func inferDecimalSeparator(col *table.Column) string {
	comma, dot, seen := 0, 0, 0
	var mixed string
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		s := v.Text()
		if strings.Contains(s, ",") {
			comma++
		}
		if strings.Contains(s, ".") {
			dot++
		}
		if mixed == "" && strings.Contains(s, ",") && strings.Contains(s, ".") {
			mixed = s
		}
		seen++
		if seen >= numericSampleLimit {
			break
		}
	}
	if comma > dot {
		return ","
	}
	if comma == dot && mixed != "" && strings.LastIndex(mixed, ",") > strings.LastIndex(mixed, ".") {
		return ","
	}
	return "."
}

// parseNumericColumn parses every value of the column with the given
// decimal separator. Returns nil-padded decimals aligned to the rows, or
// ok=false if any value failed (no partial conversion).
func parseNumericColumn(col *table.Column, sep string) ([]*decimal.Decimal, bool) {
	out := make([]*decimal.Decimal, len(col.Values))
	for i, v := range col.Values {
		if v.IsNull() {
			continue
		}
		s := strings.TrimSpace(v.Text())
		if s == "" {
			return nil, false
		}
		if sep == "," {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, false
		}
		out[i] = &d
	}
	return out, true
}
