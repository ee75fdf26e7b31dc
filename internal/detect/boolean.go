package detect

import (
	"log"
	"strings"

	"data-profiler/internal/table"
)

// BooleanConversionStep converts unresolved columns with exactly two
// distinct non-null values when one maps into the configured true set and
// the other into the false set. Off by default; wired in only when the
// pipeline is built with the boolean step enabled.
type BooleanConversionStep struct {
	cfg KeywordConfig
}

func NewBooleanStep(cfg KeywordConfig) *BooleanConversionStep {
	return &BooleanConversionStep{cfg: cfg}
}

func (s *BooleanConversionStep) Name() string { return "boolean" }

func (s *BooleanConversionStep) Apply(t *table.Table) (*table.Table, error) {
	trueSet := normalizedSet(s.cfg.BooleanTrueValues)
	falseSet := normalizedSet(s.cfg.BooleanFalseValues)

	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}

		distinct := distinctNormalized(col)
		if len(distinct) != 2 {
			continue
		}

		trues, falses := 0, 0
		for v := range distinct {
			if trueSet[v] {
				trues++
			} else if falseSet[v] {
				falses++
			}
		}
		// Exactly one true-set member and one false-set member.
		if trues != 1 || falses != 1 {
			continue
		}

		for i, v := range col.Values {
			if v.IsNull() {
				continue
			}
			norm := strings.ToLower(strings.TrimSpace(v.Text()))
			col.Values[i] = table.BoolValue(trueSet[norm])
		}
		col.Kind = table.KindBoolean
		log.Printf("column %q converted to boolean", col.Name)
	}
	return next, nil
}

func normalizedSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return out
}

func distinctNormalized(col *table.Column) map[string]bool {
	out := make(map[string]bool)
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(v.Text()))] = true
	}
	return out
}
