package detect

import (
	"log"
	"strings"
	"time"

	"data-profiler/internal/table"
)

// invalidDateMarker is a legacy sentinel: values containing it are treated
// as null before parsing.
const invalidDateMarker = "0001"

// Built-in layouts, tried in order per value. Day-first beats month-first
// for ambiguous numeric dates.
var builtinDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"2006/01/02",
	"01/02/2006",
}

// DateConversionStep converts date-like columns with per-value coercion.
// The conversion is accepted only when at least half of the non-null,
// non-sentinel values parsed; otherwise the column reverts verbatim.
type DateConversionStep struct {
	cfg KeywordConfig
}

func NewDateStep(cfg KeywordConfig) *DateConversionStep { return &DateConversionStep{cfg: cfg} }

func (s *DateConversionStep) Name() string { return "date" }

func (s *DateConversionStep) Apply(t *table.Table) (*table.Table, error) {
	layouts := append(append([]string{}, s.cfg.DateFormats...), builtinDateLayouts...)

	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}
		if !isDateCandidate(col) {
			continue
		}

		parsed := make([]*time.Time, len(col.Values))
		parsedCount, origNonNull := 0, 0
		for i, v := range col.Values {
			if v.IsNull() {
				continue
			}
			raw := v.Text()
			// Sentinel cells count neither as parsed nor as parseable.
			if strings.Contains(raw, invalidDateMarker) {
				continue
			}
			origNonNull++
			if ts, ok := parseAnyDate(raw, layouts); ok {
				parsed[i] = &ts
				parsedCount++
			}
		}

		// Less than half parsed: revert, no partial conversion.
		if parsedCount*2 < origNonNull || parsedCount == 0 {
			continue
		}

		midnight := true
		for _, ts := range parsed {
			if ts == nil {
				continue
			}
			if ts.Hour() != 0 || ts.Minute() != 0 || ts.Second() != 0 {
				midnight = false
				break
			}
		}

		for i, ts := range parsed {
			if ts == nil {
				col.Values[i] = table.Null()
			} else if midnight {
				col.Values[i] = table.DateValue(*ts)
			} else {
				col.Values[i] = table.TimestampValue(*ts)
			}
		}
		if midnight {
			col.Kind = table.KindDate
		} else {
			col.Kind = table.KindTimestamp
		}
		log.Printf("column %q converted to %s (%d/%d values parsed)", col.Name, col.Kind, parsedCount, origNonNull)
	}
	return next, nil
}

// isDateCandidate: values contain '/' or '-', or the column name suggests
// a date ("fecha"/"date").
func isDateCandidate(col *table.Column) bool {
	lower := strings.ToLower(col.Name)
	if strings.Contains(lower, "fecha") || strings.Contains(lower, "date") {
		return true
	}
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if strings.ContainsAny(v.Text(), "/-") {
			return true
		}
	}
	return false
}

func parseAnyDate(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
