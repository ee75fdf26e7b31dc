// Package loader reads raw tabular files into an in-memory table whose
// columns all start untyped. Empty cells become nulls; everything else is
// loaded verbatim as text for the detection pipeline to classify.
package loader

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"data-profiler/internal/table"
)

// Load reads the file at path into a table, dispatching on the extension.
// sep applies to CSV/TXT input only.
func Load(path string, sep rune) (*table.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		return LoadCSV(path, sep)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}

// LoadCSV reads a delimited file with a header row. Cell values are
// trimmed; empty cells load as null.
func LoadCSV(path string, sep rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if sep != 0 {
		r.Comma = sep
	}

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols := make([]*table.Column, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		cols[i] = &table.Column{Name: h, Kind: table.KindUnknown}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for i := range cols {
			cell := strings.TrimSpace(rec[i])
			if cell == "" {
				cols[i].Values = append(cols[i].Values, table.Null())
			} else {
				cols[i].Values = append(cols[i].Values, table.TextValue(cell))
			}
		}
	}

	return table.New(cols)
}

// LoadJSON reads an array of flat objects. Column order follows the key
// order of the first object, then first appearance across later objects;
// missing keys load as null. Scalar values are rendered to text so the
// pipeline can classify them uniformly.
func LoadJSON(path string) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	order, err := firstObjectKeyOrder(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		seen[k] = true
	}
	for _, rec := range records {
		var extra []string
		for k := range rec {
			if !seen[k] {
				extra = append(extra, k)
			}
		}
		// Map iteration is unordered; keep late columns stable.
		sort.Strings(extra)
		for _, k := range extra {
			seen[k] = true
			order = append(order, k)
		}
	}

	cols := make([]*table.Column, len(order))
	for i, name := range order {
		col := &table.Column{Name: name, Kind: table.KindUnknown}
		for _, rec := range records {
			col.Values = append(col.Values, jsonCell(rec[name]))
		}
		cols[i] = col
	}
	return table.New(cols)
}

func jsonCell(v any) table.Value {
	switch x := v.(type) {
	case nil:
		return table.Null()
	case string:
		if strings.TrimSpace(x) == "" {
			return table.Null()
		}
		return table.TextValue(x)
	case json.Number:
		return table.TextValue(x.String())
	case bool:
		if x {
			return table.TextValue("true")
		}
		return table.TextValue("false")
	default:
		return table.Null()
	}
}

// firstObjectKeyOrder scans the first object of the array token by token
// to recover its declared key order, which map decoding loses.
func firstObjectKeyOrder(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // [
		return nil, err
	}
	if !dec.More() {
		return nil, nil
	}
	if _, err := dec.Token(); err != nil { // {
		return nil, err
	}

	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		order = append(order, key)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				default:
					depth--
				}
			}
		}
	}
	return nil
}
