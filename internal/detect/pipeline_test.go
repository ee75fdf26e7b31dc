package detect_test

import (
	"testing"

	"data-profiler/internal/detect"
	"data-profiler/internal/table"
)

func demoConfig() detect.KeywordConfig {
	cfg := detect.DefaultKeywordConfig()
	cfg.TextKeywords = []string{"codigo", "nombre"}
	return cfg
}

func demoTable(t *testing.T) *table.Table {
	t.Helper()
	cols := []*table.Column{
		textColumn("id", "1", "2", "3", "4"),
		textColumn("amount", "1.500,75", "2.000,00", "10,50", "999,99"),
		textColumn("fecha_alta", "2024-01-15", "2024-02-01", "", "2024-03-10"),
		textColumn("codigo_postal", "28001", "08001", "41001", "28001"),
		textColumn("empty_col", "", "", "", ""),
		textColumn("notes", "alpha", "beta", "gamma", "delta"),
	}
	tbl, err := table.New(cols)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestPipelineFullRun(t *testing.T) {
	out, err := detect.NewPipeline(demoConfig(), false).Run(demoTable(t))
	if err != nil {
		t.Fatal(err)
	}

	wantKinds := map[string]table.Kind{
		"id":            table.KindInteger,
		"amount":        table.KindDecimal,
		"fecha_alta":    table.KindDate,
		"codigo_postal": table.KindText, // pinned by "codigo" keyword
		"empty_col":     table.KindText,
		"notes":         table.KindText,
	}
	for name, want := range wantKinds {
		if got := out.Column(name).Kind; got != want {
			t.Errorf("column %q: kind = %s, want %s", name, got, want)
		}
	}
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	tbl := demoTable(t)
	if _, err := detect.NewPipeline(demoConfig(), false).Run(tbl); err != nil {
		t.Fatal(err)
	}

	for _, col := range tbl.Columns {
		if col.Kind != table.KindUnknown {
			t.Errorf("column %q of the caller's table was retyped to %s", col.Name, col.Kind)
		}
	}
	if got := tbl.Column("amount").Values[0].Text(); got != "1.500,75" {
		t.Errorf("caller's value mutated: %q", got)
	}
}

func TestPipelineIdempotent(t *testing.T) {
	p := detect.NewPipeline(demoConfig(), false)

	first, err := p.Run(demoTable(t))
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Run(first)
	if err != nil {
		t.Fatal(err)
	}

	for i, col := range first.Columns {
		again := second.Columns[i]
		if col.Kind != again.Kind {
			t.Errorf("column %q: kind changed on rerun (%s → %s)", col.Name, col.Kind, again.Kind)
		}
		for j := range col.Values {
			if col.Values[j].Render() != again.Values[j].Render() {
				t.Errorf("column %q row %d: value changed on rerun", col.Name, j)
			}
		}
	}
}

func TestPipelinePreservesShape(t *testing.T) {
	tbl := demoTable(t)
	out, err := detect.NewPipeline(demoConfig(), false).Run(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Columns) != len(tbl.Columns) {
		t.Fatalf("column count changed: %d → %d", len(tbl.Columns), len(out.Columns))
	}
	for i := range tbl.Columns {
		if out.Columns[i].Name != tbl.Columns[i].Name {
			t.Errorf("column order changed at %d: %q → %q", i, tbl.Columns[i].Name, out.Columns[i].Name)
		}
	}
	if out.RowCount() != tbl.RowCount() {
		t.Errorf("row count changed: %d → %d", tbl.RowCount(), out.RowCount())
	}
}

func TestPipelineStepCallback(t *testing.T) {
	p := detect.NewPipeline(demoConfig(), false)
	var names []string
	p.OnStep(func(name string) { names = append(names, name) })

	if _, err := p.Run(demoTable(t)); err != nil {
		t.Fatal(err)
	}
	if len(names) != p.StepCount() {
		t.Errorf("callback fired %d times, want %d", len(names), p.StepCount())
	}
	if names[0] != "empty-columns" || names[len(names)-1] != "object-to-text" {
		t.Errorf("unexpected step order: %v", names)
	}
}

func TestPipelineNilTable(t *testing.T) {
	if _, err := detect.NewPipeline(demoConfig(), false).Run(nil); err == nil {
		t.Fatal("expected error for nil table")
	}
}
