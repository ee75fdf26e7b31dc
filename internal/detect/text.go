package detect

import (
	"log"
	"strings"

	"data-profiler/internal/table"
)

// EmptyColumnStep retypes all-null columns to text so later steps never see
// them as ambiguous. Runs first.
type EmptyColumnStep struct{}

func NewEmptyColumnStep() *EmptyColumnStep { return &EmptyColumnStep{} }

func (s *EmptyColumnStep) Name() string { return "empty-columns" }

func (s *EmptyColumnStep) Apply(t *table.Table) (*table.Table, error) {
	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}
		if col.AllNull() {
			col.Kind = table.KindText
			log.Printf("column %q is entirely null, typed as text", col.Name)
		}
	}
	return next, nil
}

// ForcedTextStep pins a column to text when its name contains any of the
// configured text keywords, excluding it from all later inference.
type ForcedTextStep struct {
	cfg KeywordConfig
}

func NewForcedTextStep(cfg KeywordConfig) *ForcedTextStep { return &ForcedTextStep{cfg: cfg} }

func (s *ForcedTextStep) Name() string { return "forced-text" }

func (s *ForcedTextStep) Apply(t *table.Table) (*table.Table, error) {
	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind != table.KindUnknown {
			continue
		}
		if s.isForcedText(col.Name) {
			col.Kind = table.KindText
			log.Printf("column %q forced to text by keyword", col.Name)
		}
	}
	return next, nil
}

func (s *ForcedTextStep) isForcedText(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range s.cfg.TextKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// ObjectToTextStep is the terminal catch-all: whatever is still unresolved
// becomes explicit text. Must run last.
type ObjectToTextStep struct{}

func NewObjectToTextStep() *ObjectToTextStep { return &ObjectToTextStep{} }

func (s *ObjectToTextStep) Name() string { return "object-to-text" }

func (s *ObjectToTextStep) Apply(t *table.Table) (*table.Table, error) {
	next := t.Clone()
	for _, col := range next.Columns {
		if col.Kind == table.KindUnknown {
			col.Kind = table.KindText
		}
	}
	return next, nil
}
