// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsegrid/internal/record"
)

// Snapshot field names, shared by the JSON and YAML forms.
const (
	fieldDefaultValue = "defaultValue"
	fieldRowCount     = "rowCount"
	fieldColumnCount  = "columnCount"
	fieldCells        = "cells"
	fieldX            = "x"
	fieldY            = "y"
	fieldData         = "data"
)

// Export returns a deep-copied Snapshot sufficient to rebuild g with
// FromSnapshot. Cells are in first-write order and carry stored data (the
// post-read transform is not applied). Cells is never nil.
// Complexity: O(defined·|data|).
func (g *Grid) Export() Snapshot {
	cells := make([]Cell, 0, g.order.Len())
	for el := g.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		cells = append(cells, Cell{X: e.x, Y: e.y, Data: record.Clone(e.data)})
	}

	return Snapshot{
		DefaultValue: record.Clone(g.def),
		RowCount:     g.rows,
		ColumnCount:  g.cols,
		Cells:        cells,
	}
}

// MarshalJSON encodes g as its Snapshot.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Export())
}

// FromSnapshot rebuilds a Grid from s. Extra opts (hooks, notifier) are
// applied after the snapshot's own configuration.
// Errors follow New: ErrInvalidConfiguration wrapping the cause.
func FromSnapshot(s Snapshot, opts ...Option) (*Grid, error) {
	base := []Option{
		WithDefaultValue(s.DefaultValue),
		WithRows(s.RowCount),
		WithColumns(s.ColumnCount),
		WithInitialCells(s.Cells...),
	}

	return New(append(base, opts...)...)
}

// Import writes each cell through Set, in order. The first failing cell
// aborts the import; cells before it stay applied.
// Complexity: O(len(cells)·|data|).
func (g *Grid) Import(cells []Cell) error {
	for i, c := range cells {
		if err := g.Set(c.X, c.Y, c.Data); err != nil {
			return fmt.Errorf("import cells[%d]: %w", i, err)
		}
	}

	return nil
}

// ImportValues is Import for loosely typed, decoded input (e.g. the cells
// array of a JSON document). items must be a []any, []map[string]any or
// []Cell; each element must be a record with integral "x" and "y" and an
// optional record "data" (absent or null deletes the cell).
//
// Errors:
//   - ErrInvalidValue: items is not a sequence, an element is not a record,
//     or "data" is present but not a record.
//   - ErrOutOfBounds: "x"/"y" missing, non-integral, or outside the grid.
//
// As with Import, elements before a failure stay applied.
func (g *Grid) ImportValues(items any) error {
	var seq []any
	switch t := items.(type) {
	case []Cell:
		return g.Import(t)
	case []any:
		seq = t
	case []map[string]any:
		seq = make([]any, len(t))
		for i := range t {
			seq[i] = t[i]
		}
	default:
		return fmt.Errorf("%w: import expects a sequence of records, got %T", ErrInvalidValue, items)
	}

	for i, item := range seq {
		if err := g.importValue(item); err != nil {
			return fmt.Errorf("import cells[%d]: %w", i, err)
		}
	}

	return nil
}

func (g *Grid) importValue(item any) error {
	m, ok := record.As(item)
	if !ok {
		return fmt.Errorf("%w: cell must be a record, got %T", ErrInvalidValue, item)
	}
	x, ok := coordinate(m[fieldX])
	if !ok {
		return &BoundsError{Axis: fieldX, Value: m[fieldX], Min: 0, Max: g.cols - 1}
	}
	y, ok := coordinate(m[fieldY])
	if !ok {
		return &BoundsError{Axis: fieldY, Value: m[fieldY], Min: 0, Max: g.rows - 1}
	}
	raw := m[fieldData]
	if raw == nil {
		return g.Set(x, y, nil)
	}
	data, ok := record.As(raw)
	if !ok {
		return fmt.Errorf("%w: cell data must be a record, got %T", ErrInvalidValue, raw)
	}

	return g.Set(x, y, data)
}

// DecodeJSON reads one JSON snapshot from r and builds a Grid from it.
// Numbers inside cell data are kept as json.Number so integers round-trip
// exactly. Missing configuration fields take New's defaults.
func DecodeJSON(r io.Reader, opts ...Option) (*Grid, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("grid: decode JSON snapshot: %w", err)
	}

	return fromDocument(doc, opts)
}

// EncodeYAML writes g's Snapshot to w as YAML, using the same field names
// as the JSON form.
func (g *Grid) EncodeYAML(w io.Writer) error {
	s := g.Export()
	s.DefaultValue = record.Plain(s.DefaultValue)
	for i := range s.Cells {
		s.Cells[i].Data = record.Plain(s.Cells[i].Data)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("grid: encode YAML snapshot: %w", err)
	}

	return enc.Close()
}

// DecodeYAML reads one YAML snapshot from r and builds a Grid from it.
func DecodeYAML(r io.Reader, opts ...Option) (*Grid, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("grid: decode YAML snapshot: %w", err)
	}

	return fromDocument(doc, opts)
}

// fromDocument builds a Grid from a generically decoded snapshot document.
// Configuration problems, including any failing cell, surface as
// ErrInvalidConfiguration so that no partially built Grid escapes.
func fromDocument(doc any, extra []Option) (*Grid, error) {
	m, ok := record.As(doc)
	if !ok {
		return nil, fmt.Errorf("%w: snapshot must be a record, got %T", ErrInvalidConfiguration, doc)
	}

	var opts []Option
	if v, present := m[fieldDefaultValue]; present {
		def, ok := record.As(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a record, got %T", ErrInvalidConfiguration, fieldDefaultValue, v)
		}
		opts = append(opts, WithDefaultValue(def))
	}
	for _, f := range []struct {
		name string
		with func(int) Option
	}{
		{fieldRowCount, WithRows},
		{fieldColumnCount, WithColumns},
	} {
		v, present := m[f.name]
		if !present {
			continue
		}
		n, ok := coordinate(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a positive integer, got %v", ErrInvalidConfiguration, f.name, v)
		}
		opts = append(opts, f.with(n))
	}

	g, err := New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	if cells, present := m[fieldCells]; present && cells != nil {
		if err = g.ImportValues(cells); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
	}

	return g, nil
}
