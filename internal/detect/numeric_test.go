package detect_test

import (
	"testing"

	"data-profiler/internal/detect"
	"data-profiler/internal/table"
)

func textColumn(name string, vals ...string) *table.Column {
	col := &table.Column{Name: name, Kind: table.KindUnknown}
	for _, v := range vals {
		if v == "" {
			col.Values = append(col.Values, table.Null())
		} else {
			col.Values = append(col.Values, table.TextValue(v))
		}
	}
	return col
}

func mustTable(t *testing.T, cols ...*table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(cols)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func applyStep(t *testing.T, s detect.Step, tbl *table.Table) *table.Table {
	t.Helper()
	out, err := s.Apply(tbl)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestNumericSeparatorNormalization(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"european", "1.500,75", "1500.75"},
		{"american", "1,500.75", "1500.75"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := mustTable(t, textColumn("amount", tc.raw))
			out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

			col := out.Column("amount")
			if col.Kind != table.KindDecimal {
				t.Fatalf("kind = %s, want decimal", col.Kind)
			}
			if got := col.Values[0].Decimal().String(); got != tc.want {
				t.Errorf("parsed %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNumericIntegerDetection(t *testing.T) {
	tbl := mustTable(t, textColumn("qty", "10", "", "2500", "7"))
	out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

	col := out.Column("qty")
	if col.Kind != table.KindInteger {
		t.Fatalf("kind = %s, want integer", col.Kind)
	}
	if col.Values[2].Int() != 2500 {
		t.Errorf("value = %d, want 2500", col.Values[2].Int())
	}
	if !col.Values[1].IsNull() {
		t.Error("null cell lost during conversion")
	}
}

func TestNumericRoundsToTwoDecimals(t *testing.T) {
	tbl := mustTable(t, textColumn("rate", "3.14159", "2.5"))
	out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

	col := out.Column("rate")
	if col.Kind != table.KindDecimal {
		t.Fatalf("kind = %s, want decimal", col.Kind)
	}
	if got := col.Values[0].Decimal().String(); got != "3.14" {
		t.Errorf("value = %q, want 3.14 (rounded)", got)
	}
}

func TestNumericBeyondInt64StaysDecimal(t *testing.T) {
	// 23-digit identifiers overflow int64; they must stay exact decimals.
	huge := "99999999999999999999999"
	tbl := mustTable(t, textColumn("ref_id", huge, "1"))
	out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

	col := out.Column("ref_id")
	if col.Kind != table.KindDecimal {
		t.Fatalf("kind = %s, want decimal", col.Kind)
	}
	if got := col.Values[0].Decimal().String(); got != huge {
		t.Errorf("value = %q, digits lost (want %q)", got, huge)
	}
}

func TestNumericAtomicRevert(t *testing.T) {
	// One unparseable value must leave the whole column verbatim.
	tbl := mustTable(t, textColumn("mixed", "100", "200", "cien"))
	out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

	col := out.Column("mixed")
	if col.Kind != table.KindUnknown {
		t.Fatalf("kind = %s, want unknown (reverted)", col.Kind)
	}
	if got := col.Values[0].Text(); got != "100" {
		t.Errorf("value = %q, want original %q", got, "100")
	}
}

func TestNumericSkipsResolvedColumns(t *testing.T) {
	col := textColumn("pinned", "1", "2")
	col.Kind = table.KindText
	tbl := mustTable(t, col)
	out := applyStep(t, detect.NewNumericStep(detect.DefaultKeywordConfig()), tbl)

	if out.Column("pinned").Kind != table.KindText {
		t.Error("numeric step touched a resolved column")
	}
}
