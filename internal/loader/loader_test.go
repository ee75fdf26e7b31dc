package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"data-profiler/internal/loader"
	"data-profiler/internal/table"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "data.csv", "\uFEFFid,nombre,importe\n1, Ana ,10\n2,,20\n")

	tbl, err := loader.Load(path, ',')
	if err != nil {
		t.Fatal(err)
	}

	if len(tbl.Columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(tbl.Columns))
	}
	if tbl.Columns[0].Name != "id" {
		t.Errorf("BOM not stripped from first header: %q", tbl.Columns[0].Name)
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", tbl.RowCount())
	}

	nombre := tbl.Column("nombre")
	if got := nombre.Values[0].Text(); got != "Ana" {
		t.Errorf("cell not trimmed: %q", got)
	}
	if !nombre.Values[1].IsNull() {
		t.Error("empty cell did not load as null")
	}
	for _, col := range tbl.Columns {
		if col.Kind != table.KindUnknown {
			t.Errorf("column %q loaded with kind %s, want unknown", col.Name, col.Kind)
		}
	}
}

func TestLoadCSVSeparator(t *testing.T) {
	path := writeTemp(t, "data.txt", "a;b\n1;2\n")

	tbl, err := loader.Load(path, ';')
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[1].Name != "b" {
		t.Fatalf("semicolon separator not honored: %+v", tbl.Columns)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "data.json", `[{"b":1,"a":"x"},{"a":null,"c":true}]`)

	tbl, err := loader.Load(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	// First-object key order, then first appearance.
	wantOrder := []string{"b", "a", "c"}
	if len(tbl.Columns) != len(wantOrder) {
		t.Fatalf("got %d columns, want %d", len(tbl.Columns), len(wantOrder))
	}
	for i, name := range wantOrder {
		if tbl.Columns[i].Name != name {
			t.Errorf("column %d = %q, want %q", i, tbl.Columns[i].Name, name)
		}
	}

	b := tbl.Column("b")
	if got := b.Values[0].Text(); got != "1" {
		t.Errorf("number not rendered as text: %q", got)
	}
	if !b.Values[1].IsNull() {
		t.Error("missing key did not load as null")
	}

	a := tbl.Column("a")
	if !a.Values[1].IsNull() {
		t.Error("explicit null did not load as null")
	}

	c := tbl.Column("c")
	if !c.Values[0].IsNull() {
		t.Error("missing key in first record did not load as null")
	}
	if got := c.Values[1].Text(); got != "true" {
		t.Errorf("bool not rendered as text: %q", got)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "data.parquet", "whatever")
	if _, err := loader.Load(path, ','); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"), ','); err == nil {
		t.Fatal("expected error for missing file")
	}
}
