package detect_test

import (
	"testing"

	"data-profiler/internal/detect"
	"data-profiler/internal/table"
)

func TestBooleanConvertsTwoValueColumn(t *testing.T) {
	tbl := mustTable(t, textColumn("active", "yes", "NO", " Yes ", "", "no"))
	out := applyStep(t, detect.NewBooleanStep(detect.DefaultKeywordConfig()), tbl)

	col := out.Column("active")
	if col.Kind != table.KindBoolean {
		t.Fatalf("kind = %s, want boolean", col.Kind)
	}
	if !col.Values[0].Bool() {
		t.Error("'yes' mapped to false")
	}
	if col.Values[1].Bool() {
		t.Error("'NO' mapped to true")
	}
	if !col.Values[3].IsNull() {
		t.Error("null cell lost during conversion")
	}
}

func TestBooleanRejectsSameSetPair(t *testing.T) {
	// Two distinct values both in the true set: not a boolean column.
	tbl := mustTable(t, textColumn("flag", "yes", "si"))
	out := applyStep(t, detect.NewBooleanStep(detect.DefaultKeywordConfig()), tbl)

	if out.Column("flag").Kind != table.KindUnknown {
		t.Error("column with two true-set values was converted")
	}
}

func TestBooleanRejectsUnknownLiterals(t *testing.T) {
	tbl := mustTable(t, textColumn("flag", "on", "off"))
	out := applyStep(t, detect.NewBooleanStep(detect.DefaultKeywordConfig()), tbl)

	if out.Column("flag").Kind != table.KindUnknown {
		t.Error("column with out-of-set literals was converted")
	}
}

func TestBooleanRejectsThreeDistinct(t *testing.T) {
	tbl := mustTable(t, textColumn("flag", "yes", "no", "maybe"))
	out := applyStep(t, detect.NewBooleanStep(detect.DefaultKeywordConfig()), tbl)

	if out.Column("flag").Kind != table.KindUnknown {
		t.Error("column with three distinct values was converted")
	}
}

func TestBooleanStepIsOptional(t *testing.T) {
	cfg := detect.DefaultKeywordConfig()

	withBool := detect.NewPipeline(cfg, true)
	without := detect.NewPipeline(cfg, false)
	if withBool.StepCount() != without.StepCount()+1 {
		t.Fatalf("boolean step not independently toggleable: %d vs %d steps",
			withBool.StepCount(), without.StepCount())
	}

	tbl := mustTable(t, textColumn("active", "yes", "no", "yes", "no", "yes",
		"no", "yes", "no", "yes", "no",
		"yes", "no", "yes", "no", "yes",
		"no", "yes", "no", "yes", "no",
		"yes", "no", "yes", "no", "yes",
		"no", "yes", "no", "yes", "no",
		"yes", "no", "yes", "no", "yes",
		"no", "yes", "no", "yes", "no",
		"yes", "no", "yes", "no", "yes"))

	out, err := withBool.Run(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if out.Column("active").Kind != table.KindBoolean {
		t.Error("enabled pipeline did not convert boolean column")
	}

	out, err = without.Run(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if out.Column("active").Kind == table.KindBoolean {
		t.Error("disabled pipeline converted boolean column")
	}
}
