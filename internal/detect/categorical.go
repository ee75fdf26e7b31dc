package detect

import (
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"data-profiler/internal/table"
)

// CategoricalConversionStep classifies low-cardinality text columns as
// categorical. A value set mixing numeric-looking and non-numeric members
// blocks the conversion regardless of cardinality.
type CategoricalConversionStep struct {
	cfg KeywordConfig
}

func NewCategoricalStep(cfg KeywordConfig) *CategoricalConversionStep {
	return &CategoricalConversionStep{cfg: cfg}
}

func (s *CategoricalConversionStep) Name() string { return "categorical" }

func (s *CategoricalConversionStep) Apply(t *table.Table) (*table.Table, error) {
	next := t.Clone()
	rows := next.RowCount()

	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}

		distinct := distinctValues(col)
		cardinality := 0.0
		if rows > 0 {
			cardinality = float64(len(distinct)) / float64(rows)
		}

		if len(distinct) == 0 || len(distinct) > s.cfg.UniqueCountLimit {
			continue
		}
		if cardinality >= s.cfg.CardinalityThreshold {
			continue
		}
		if hasMixedValues(distinct) {
			log.Printf("column %q has mixed numeric and text values, left as-is", col.Name)
			continue
		}

		sort.Strings(distinct)
		col.Kind = table.KindCategorical
		col.Categories = distinct
		log.Printf("column %q converted to categorical (cardinality %.4f, %d distinct)", col.Name, cardinality, len(distinct))
	}
	return next, nil
}

func distinctValues(col *table.Column) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		s := v.Text()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// hasMixedValues reports whether the distinct set contains both
// numeric-looking members and members that are not.
func hasMixedValues(distinct []string) bool {
	numeric, text := false, false
	for _, s := range distinct {
		if _, err := decimal.NewFromString(strings.TrimSpace(s)); err == nil {
			numeric = true
		} else {
			text = true
		}
		if numeric && text {
			return true
		}
	}
	return false
}
