// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/sparsegrid/notify"

// Record is the structured value held by a cell: a non-nil map whose
// contents are JSON-shaped (nil, bool, string, numbers, json.Number,
// nested map[string]any and []any).
type Record = map[string]any

// Cell is a snapshot of one coordinate. Values of this type handed out by
// the grid never alias internal state.
type Cell struct {
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	Data Record `json:"data" yaml:"data"`
}

// Snapshot is the canonical serialized form of a grid: the defined cells in
// first-write order plus the immutable configuration.
type Snapshot struct {
	DefaultValue Record `json:"defaultValue" yaml:"defaultValue"`
	RowCount     int    `json:"rowCount" yaml:"rowCount"`
	ColumnCount  int    `json:"columnCount" yaml:"columnCount"`
	Cells        []Cell `json:"cells" yaml:"cells"`
}

// Visitor is called once per visited coordinate with a private cell
// snapshot and its zero-based position in the traversal.
type Visitor func(c Cell, i int)

// Transform rewrites a record at the store/read boundary. It receives a
// deep copy and returns the value to use instead.
type Transform func(Record) Record

// Publisher receives change notifications. *notify.Hub implements it.
type Publisher interface {
	Publish(notify.Event)
}

// coord is the map key of the coordinate index.
type coord struct {
	x, y int
}

// entry is the list payload of a defined cell. Its identity (and list
// position) survives overwrites; only data is replaced.
type entry struct {
	x, y int
	data Record
}
