package table

import "fmt"

// Kind is the semantic type assigned to a column, independent of how the
// target warehouse will store it.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindInteger
	KindDecimal
	KindDate
	KindTimestamp
	KindBoolean
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindBoolean:
		return "boolean"
	case KindCategorical:
		return "categorical"
	default:
		return "unknown"
	}
}

type Column struct {
	Name   string
	Kind   Kind
	Values []Value
	// Categories holds the sorted distinct values of a categorical
	// column. Empty for every other kind.
	Categories []string
}

func (c *Column) NonNullCount() int {
	n := 0
	for _, v := range c.Values {
		if !v.IsNull() {
			n++
		}
	}
	return n
}

func (c *Column) AllNull() bool {
	return c.NonNullCount() == 0
}

func (c *Column) Clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	out.Values = make([]Value, len(c.Values))
	copy(out.Values, c.Values)
	if len(c.Categories) > 0 {
		out.Categories = make([]string, len(c.Categories))
		copy(out.Categories, c.Categories)
	}
	return out
}

// Table is an in-memory tabular dataset: ordered named columns sharing one
// row count.
type Table struct {
	Columns []*Column
}

func New(cols []*Column) (*Table, error) {
	t := &Table{Columns: cols}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Validate checks the uniform row count invariant.
func (t *Table) Validate() error {
	rows := t.RowCount()
	for _, c := range t.Columns {
		if len(c.Values) != rows {
			return fmt.Errorf("column %q has %d rows, expected %d", c.Name, len(c.Values), rows)
		}
	}
	return nil
}

func (t *Table) Clone() *Table {
	out := &Table{Columns: make([]*Column, len(t.Columns))}
	for i, c := range t.Columns {
		out.Columns[i] = c.Clone()
	}
	return out
}

// Column returns the named column, or nil if absent.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}
