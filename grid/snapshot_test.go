package grid_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/grid"
)

// TestExport_IsDeepCopy: mutating an export never reaches the grid.
func TestExport_IsDeepCopy(t *testing.T) {
	g := scenarioGrid(t)
	snap := g.Export()
	snap.Cells[0].Data["a"] = 100
	snap.DefaultValue["x"] = 1
	snap.Cells = snap.Cells[:1]

	again := g.Export()
	assert.Equal(t, 1, again.Cells[0].Data["a"])
	assert.Empty(t, again.DefaultValue)
	assert.Len(t, again.Cells, 3)
}

// TestExport_RoundTrip: export → FromSnapshot → export is stable.
func TestExport_RoundTrip(t *testing.T) {
	g, err := grid.New(grid.WithSize(6, 2), grid.WithDefaultValue(grid.Record{"kind": "empty"}))
	require.NoError(t, err)
	require.NoError(t, g.Set(5, 1, grid.Record{"kind": "wall", "hp": []any{1, 2}}))
	require.NoError(t, g.Set(0, 0, grid.Record{"kind": "door"}))

	first := g.Export()
	rebuilt, err := grid.FromSnapshot(first)
	require.NoError(t, err)
	second := rebuilt.Export()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

// TestFromSnapshot_Invalid propagates configuration errors.
func TestFromSnapshot_Invalid(t *testing.T) {
	_, err := grid.FromSnapshot(grid.Snapshot{DefaultValue: grid.Record{}, RowCount: 0, ColumnCount: 3})
	require.ErrorIs(t, err, grid.ErrInvalidConfiguration)

	_, err = grid.FromSnapshot(grid.Snapshot{RowCount: 2, ColumnCount: 2})
	require.ErrorIs(t, err, grid.ErrInvalidConfiguration, "missing default value")
}

// TestMarshalJSON emits exactly the canonical snapshot shape.
func TestMarshalJSON(t *testing.T) {
	g := scenarioGrid(t)
	b, err := json.Marshal(g)
	require.NoError(t, err)

	want := `{"defaultValue":{},"rowCount":4,"columnCount":4,"cells":[` +
		`{"x":1,"y":2,"data":{"a":1}},{"x":3,"y":3,"data":{"b":2}},{"x":0,"y":0,"data":{"c":3}}]}`
	assert.JSONEq(t, want, string(b))
	assert.Equal(t, want, string(b), "field and cell order are part of the format")

	empty, err := grid.New(grid.WithSize(1, 1))
	require.NoError(t, err)
	b, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"cells":[]`)
}

// TestDecodeJSON_RoundTrip: marshal → DecodeJSON → marshal is byte-stable.
func TestDecodeJSON_RoundTrip(t *testing.T) {
	g := scenarioGrid(t)
	require.NoError(t, g.Set(2, 1, grid.Record{"big": 9007199254740993, "f": 0.5, "nested": grid.Record{"l": []any{true, nil}}}))
	first, err := json.Marshal(g)
	require.NoError(t, err)

	rebuilt, err := grid.DecodeJSON(bytes.NewReader(first))
	require.NoError(t, err)
	second, err := json.Marshal(rebuilt)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

// TestDecodeJSON_Defaults: missing configuration fields fall back to New's defaults.
func TestDecodeJSON_Defaults(t *testing.T) {
	g, err := grid.DecodeJSON(strings.NewReader(`{"cells":[{"x":29,"y":29,"data":{"z":1}}]}`))
	require.NoError(t, err)
	assert.Equal(t, 30, g.Rows())
	assert.Equal(t, 30, g.Columns())
	ok, err := g.Has(29, 29)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestDecodeJSON_Errors covers malformed and invalid documents.
func TestDecodeJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want []error
	}{
		{"Malformed", `{"rowCount":`, nil},
		{"NotRecord", `[1,2]`, []error{grid.ErrInvalidConfiguration}},
		{"DefaultNotRecord", `{"defaultValue":[]}`, []error{grid.ErrInvalidConfiguration}},
		{"FractionalRows", `{"rowCount":2.5}`, []error{grid.ErrInvalidConfiguration}},
		{"CellsNotSequence", `{"cells":{"x":0}}`, []error{grid.ErrInvalidConfiguration, grid.ErrInvalidValue}},
		{"CellOutOfBounds", `{"rowCount":2,"columnCount":2,"cells":[{"x":2,"y":0,"data":{}}]}`, []error{grid.ErrInvalidConfiguration, grid.ErrOutOfBounds}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.DecodeJSON(strings.NewReader(tc.doc))
			require.Error(t, err)
			require.Nil(t, g)
			for _, w := range tc.want {
				require.ErrorIs(t, err, w)
			}
		})
	}
}

// TestImport applies cells in order and stops at the first failure.
func TestImport(t *testing.T) {
	g, err := grid.New(grid.WithSize(3, 3))
	require.NoError(t, err)

	err = g.Import([]grid.Cell{
		{X: 0, Y: 0, Data: grid.Record{"n": 1}},
		{X: 1, Y: 1, Data: grid.Record{"n": 2}},
		{X: 3, Y: 0, Data: grid.Record{"n": 3}},
		{X: 2, Y: 2, Data: grid.Record{"n": 4}},
	})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "cells[2]")
	assert.Equal(t, 2, g.Len())
	ok, _ := g.Has(2, 2)
	assert.False(t, ok)
}

// TestImportValues covers the loosely typed import path.
func TestImportValues(t *testing.T) {
	cases := []struct {
		name  string
		items any
		err   error
		len   int
	}{
		{"NotSequence", map[string]any{"x": 0}, grid.ErrInvalidValue, 0},
		{"ElementNotRecord", []any{map[string]any{"x": 0, "y": 0, "data": map[string]any{}}, "cell"}, grid.ErrInvalidValue, 1},
		{"DataNotRecord", []any{map[string]any{"x": 0, "y": 0, "data": []any{}}}, grid.ErrInvalidValue, 0},
		{"FractionalX", []any{map[string]any{"x": 1.5, "y": 0, "data": map[string]any{}}}, grid.ErrOutOfBounds, 0},
		{"StringY", []any{map[string]any{"x": 0, "y": "1", "data": map[string]any{}}}, grid.ErrOutOfBounds, 0},
		{"MissingX", []any{map[string]any{"y": 0, "data": map[string]any{}}}, grid.ErrOutOfBounds, 0},
		{"Valid", []any{
			map[string]any{"x": 1.0, "y": json.Number("2"), "data": map[string]any{"a": 1}},
			map[string]any{"x": int64(0), "y": uint8(0), "data": map[string]any{}},
		}, nil, 2},
		{"TypedMaps", []map[string]any{{"x": 2, "y": 2, "data": map[string]any{}}}, nil, 1},
		{"TypedCells", []grid.Cell{{X: 2, Y: 0, Data: grid.Record{}}}, nil, 1},
		{"AbsentDataDeletes", []any{
			map[string]any{"x": 0, "y": 0, "data": map[string]any{}},
			map[string]any{"x": 0, "y": 0},
		}, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(grid.WithSize(3, 3))
			require.NoError(t, err)
			err = g.ImportValues(tc.items)
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, tc.len, g.Len())
		})
	}
}

// TestImportValues_BoundsMessage reports the valid range for the failing axis.
func TestImportValues_BoundsMessage(t *testing.T) {
	g, err := grid.New(grid.WithSize(5, 2))
	require.NoError(t, err)
	err = g.ImportValues([]any{map[string]any{"x": 0, "y": 0.25, "data": map[string]any{}}})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "y=0.25")
	assert.Contains(t, err.Error(), "[0, 1]")
}

// TestYAML_RoundTrip: EncodeYAML → DecodeYAML reproduces the snapshot.
func TestYAML_RoundTrip(t *testing.T) {
	g, err := grid.New(grid.WithSize(3, 2), grid.WithDefaultValue(grid.Record{"v": 0}))
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 1, grid.Record{"name": "tower", "levels": []any{1, 2}, "meta": grid.Record{"ok": true}}))
	require.NoError(t, g.Set(0, 0, grid.Record{"name": "base"}))

	var buf bytes.Buffer
	require.NoError(t, g.EncodeYAML(&buf))
	assert.Contains(t, buf.String(), "rowCount: 2")
	assert.Contains(t, buf.String(), "columnCount: 3")

	rebuilt, err := grid.DecodeYAML(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(g.Export(), rebuilt.Export()); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestYAML_FromJSONNumbers: json.Number data is written as plain YAML numbers.
func TestYAML_FromJSONNumbers(t *testing.T) {
	g, err := grid.DecodeJSON(strings.NewReader(`{"rowCount":1,"columnCount":1,"defaultValue":{},"cells":[{"x":0,"y":0,"data":{"n":7}}]}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.EncodeYAML(&buf))
	assert.Contains(t, buf.String(), "n: 7")
	assert.NotContains(t, buf.String(), `"7"`)
}

// TestDecodeYAML_Empty reports an error for an empty document.
func TestDecodeYAML_Empty(t *testing.T) {
	_, err := grid.DecodeYAML(strings.NewReader(""))
	require.Error(t, err)
}
