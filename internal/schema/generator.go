package schema

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"unicode/utf8"

	"data-profiler/internal/dialect"
	"data-profiler/internal/table"
)

// Generator derives per-column schema metadata from a fully typed table,
// using a Dialect for type mapping. The derived map is computed once and
// cached; later exports reuse it.
type Generator struct {
	t       *table.Table
	d       dialect.Dialect
	entries map[string]*Entry
}

func NewGenerator(t *table.Table, d dialect.Dialect) *Generator {
	return &Generator{t: t, d: d}
}

// SchemaMap builds (or returns the cached) column → Entry map. Every
// column yields exactly one entry or the whole call fails.
func (g *Generator) SchemaMap() (map[string]*Entry, error) {
	if g.entries != nil {
		return g.entries, nil
	}
	if g.t == nil {
		return nil, fmt.Errorf("nil table")
	}
	if err := g.t.Validate(); err != nil {
		return nil, err
	}

	entries := make(map[string]*Entry, len(g.t.Columns))
	for _, col := range g.t.Columns {
		entry := &Entry{
			Type:     g.d.MapType(col),
			Length:   columnLength(col),
			Nullable: col.NonNullCount() < len(col.Values),
		}

		switch col.Kind {
		case table.KindCategorical:
			entry.AllowedValues = append([]string{}, col.Categories...)
		case table.KindBoolean:
			entry.AllowedValues = distinctLiterals(col)
		case table.KindInteger, table.KindDecimal:
			entry.Stats = numericStats(col)
		case table.KindDate, table.KindTimestamp:
			entry.Stats = dateRange(col)
		}

		entries[col.Name] = entry
	}

	g.entries = entries
	return g.entries, nil
}

// DDL renders the CREATE TABLE statement for the generator's table.
func (g *Generator) DDL(tableName string) (string, error) {
	entries, err := g.SchemaMap()
	if err != nil {
		return "", err
	}
	cols := make([]dialect.ColumnDDL, len(g.t.Columns))
	for i, col := range g.t.Columns {
		cols[i] = dialect.ColumnDDL{Name: col.Name, Type: entries[col.Name].Type}
	}
	return g.d.GenerateDDL(tableName, cols), nil
}

// ExportReport writes the schema report: one row per column, in original
// column order. Parent directories are created as needed.
func (g *Generator) ExportReport(path string) error {
	entries, err := g.SchemaMap()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"column", "type", "length", "allowed_values", "mandatory"}); err != nil {
		return err
	}
	for _, col := range g.t.Columns {
		e := entries[col.Name]
		mandatory := "mandatory"
		if e.Nullable {
			mandatory = "nullable"
		}
		row := []string{col.Name, e.Type, strconv.Itoa(e.Length), e.Descriptor(), mandatory}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// ExportDDL writes the CREATE TABLE statement to a file, creating parent
// directories as needed.
func (g *Generator) ExportDDL(tableName, path string) error {
	ddl, err := g.DDL(tableName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create DDL directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(ddl+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write DDL file: %w", err)
	}
	return nil
}

func columnLength(col *table.Column) int {
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

func distinctLiterals(col *table.Column) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		s := v.Render()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// numericStats renders min/max/mean/std of the non-null values. Std is the
// sample standard deviation; with fewer than two values it reports 0.
func numericStats(col *table.Column) string {
	var vals []float64
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		if col.Kind == table.KindInteger {
			vals = append(vals, float64(v.Int()))
		} else {
			vals = append(vals, v.Decimal().InexactFloat64())
		}
	}
	if len(vals) == 0 {
		return ""
	}

	min, max, sum := vals[0], vals[0], 0.0
	for _, x := range vals {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		sum += x
	}
	mean := sum / float64(len(vals))

	std := 0.0
	if len(vals) > 1 {
		ss := 0.0
		for _, x := range vals {
			ss += (x - mean) * (x - mean)
		}
		std = math.Sqrt(ss / float64(len(vals)-1))
	}

	return fmt.Sprintf("min: %.1f - max: %.1f - mean: %.1f - std: %.1f", min, max, mean, std)
}

func dateRange(col *table.Column) string {
	first := true
	var min, max int64
	var minV, maxV table.Value
	for _, v := range col.Values {
		if v.IsNull() {
			continue
		}
		u := v.Time().Unix()
		if first || u < min {
			min, minV = u, v
		}
		if first || u > max {
			max, maxV = u, v
		}
		first = false
	}
	if first {
		return ""
	}
	return fmt.Sprintf("min: %s - max: %s", minV.Time().Format("02/01/2006"), maxV.Time().Format("02/01/2006"))
}
