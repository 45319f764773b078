// SPDX-License-Identifier: MIT

package grid

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/sparsegrid/internal/record"
	"github.com/katalvlaran/sparsegrid/notify"
)

// Grid is a bounded sparse 2D store. See the package doc for the contract.
//
// index and order hold the same *entry values: index answers "is (x,y)
// defined" in O(1), order preserves first-write order for traversal and
// export. Both are updated together; neither is ever exposed.
type Grid struct {
	rows, cols int
	def        Record // immutable after New; cloned on every read

	index map[coord]*list.Element // coord → element of order (Value is *entry)
	order *list.List              // first-write order

	preStore  Transform
	postRead  Transform
	publisher Publisher
	readEvent bool
}

// New builds a Grid from opts.
// Stage 1 (Validate): rows/cols > 0, default value is a valid record.
// Stage 2 (Prepare): allocate both indexes, clone the default.
// Stage 3 (Seed): apply initial cells through Set.
// Any failure yields ErrInvalidConfiguration wrapping the cause; no Grid is returned.
// Complexity: O(len(initial cells)).
func New(opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.rows <= 0 {
		return nil, fmt.Errorf("%w: rowCount must be a positive integer, got %d", ErrInvalidConfiguration, o.rows)
	}
	if o.cols <= 0 {
		return nil, fmt.Errorf("%w: columnCount must be a positive integer, got %d", ErrInvalidConfiguration, o.cols)
	}
	def := Record{}
	if o.defSet {
		if err := record.Validate(o.def); err != nil {
			return nil, fmt.Errorf("%w: defaultValue: %w", ErrInvalidConfiguration, err)
		}
		def = record.Clone(o.def)
	}

	g := &Grid{
		rows:      o.rows,
		cols:      o.cols,
		def:       def,
		index:     make(map[coord]*list.Element, len(o.initial)),
		order:     list.New(),
		preStore:  o.preStore,
		postRead:  o.postRead,
		publisher: o.publisher,
		readEvent: o.readEvent,
	}
	for i, c := range o.initial {
		if err := g.Set(c.X, c.Y, c.Data); err != nil {
			return nil, fmt.Errorf("%w: initialCells[%d]: %w", ErrInvalidConfiguration, i, err)
		}
	}

	return g, nil
}

// Rows returns the row count. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the column count. Complexity: O(1).
func (g *Grid) Columns() int { return g.cols }

// Len returns the number of defined cells. Complexity: O(1).
func (g *Grid) Len() int { return g.order.Len() }

// DefaultValue returns a copy of the default record.
func (g *Grid) DefaultValue() Record { return record.Clone(g.def) }

// Has reports whether a cell is stored at (x, y).
// Returns a *BoundsError (ErrOutOfBounds) for invalid coordinates.
// Complexity: O(1).
func (g *Grid) Has(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, gridErrorf("Has", x, y, err)
	}
	_, ok := g.index[coord{x, y}]

	return ok, nil
}

// Get returns a snapshot of (x, y): a copy of the stored data, or a copy
// of the default value when nothing is stored. The post-read transform, if
// any, is applied to the copy. Publishes notify.KindGet when read events
// are enabled.
// Complexity: O(1) + O(|data|).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Cell{}, gridErrorf("Get", x, y, err)
	}
	c := g.view(x, y)
	if g.readEvent {
		g.publish(notify.KindGet, x, y, c.Data)
	}

	return c, nil
}

// Set stores a copy of v at (x, y).
//
// Behavior:
//   - nil v behaves exactly like Delete(x, y).
//   - first write creates the cell and appends it to the traversal order;
//     later writes replace data in place and keep the position.
//   - publishes notify.KindSet then notify.KindUpdate.
//
// Errors: *BoundsError (ErrOutOfBounds) before anything else; ErrInvalidValue
// if v, or the pre-store transform's result, is not a valid record. A failed
// Set leaves the grid untouched.
// Complexity: O(1) + O(|v|).
func (g *Grid) Set(x, y int, v Record) error {
	if err := g.checkBounds(x, y); err != nil {
		return gridErrorf("Set", x, y, err)
	}
	if v == nil {
		g.remove(x, y)
		return nil
	}
	data, err := g.prepare(v)
	if err != nil {
		return gridErrorf("Set", x, y, err)
	}

	key := coord{x, y}
	if el, ok := g.index[key]; ok {
		el.Value.(*entry).data = data
	} else {
		g.index[key] = g.order.PushBack(&entry{x: x, y: y, data: data})
	}
	g.publish(notify.KindSet, x, y, data)
	g.publish(notify.KindUpdate, x, y, data)

	return nil
}

// Delete removes the cell at (x, y) from both indexes, keeping the relative
// order of the remaining cells, and publishes notify.KindDelete then
// notify.KindUpdate with nil data. Deleting an empty coordinate is a no-op
// and publishes nothing.
// Complexity: O(1).
func (g *Grid) Delete(x, y int) error {
	if err := g.checkBounds(x, y); err != nil {
		return gridErrorf("Delete", x, y, err)
	}
	g.remove(x, y)

	return nil
}

// Clear deletes every defined cell, in first-write order, through the same
// path as Delete (so observers see one delete/update pair per cell).
// Complexity: O(defined).
func (g *Grid) Clear() {
	for g.order.Len() > 0 {
		e := g.order.Front().Value.(*entry)
		g.remove(e.x, e.y)
	}
}

// Clone returns an independent Grid with the same configuration, hooks,
// notifier and cells (same order). No events are published.
// Complexity: O(defined·|data|).
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:      g.rows,
		cols:      g.cols,
		def:       record.Clone(g.def),
		index:     make(map[coord]*list.Element, len(g.index)),
		order:     list.New(),
		preStore:  g.preStore,
		postRead:  g.postRead,
		publisher: g.publisher,
		readEvent: g.readEvent,
	}
	for el := g.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry)
		c.index[coord{e.x, e.y}] = c.order.PushBack(&entry{x: e.x, y: e.y, data: record.Clone(e.data)})
	}

	return c
}

// prepare validates v and produces the record that will be stored.
func (g *Grid) prepare(v Record) (Record, error) {
	if err := validateValue(v); err != nil {
		return nil, err
	}
	data := record.Clone(v)
	if g.preStore == nil {
		return data, nil
	}
	data = g.preStore(data)
	if data == nil {
		return nil, fmt.Errorf("%w: pre-store transform returned nil", ErrInvalidValue)
	}
	if err := validateValue(data); err != nil {
		return nil, fmt.Errorf("pre-store transform: %w", err)
	}

	// The transform may hand back something it still references.
	return record.Clone(data), nil
}

// remove unlinks (x, y) if present. Bounds are the caller's concern.
func (g *Grid) remove(x, y int) {
	key := coord{x, y}
	el, ok := g.index[key]
	if !ok {
		return
	}
	delete(g.index, key)
	g.order.Remove(el)
	g.publish(notify.KindDelete, x, y, nil)
	g.publish(notify.KindUpdate, x, y, nil)
}

// view builds the outward snapshot of a valid coordinate.
func (g *Grid) view(x, y int) Cell {
	var data Record
	if el, ok := g.index[coord{x, y}]; ok {
		data = record.Clone(el.Value.(*entry).data)
	} else {
		data = record.Clone(g.def)
	}
	if g.postRead != nil {
		data = g.postRead(data)
	}

	return Cell{X: x, Y: y, Data: data}
}

// publish sends one event with a private copy of data. No-op without a notifier.
func (g *Grid) publish(kind notify.Kind, x, y int, data Record) {
	if g.publisher == nil {
		return
	}
	g.publisher.Publish(notify.Event{Kind: kind, X: x, Y: y, Data: record.Clone(data)})
}
