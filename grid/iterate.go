// SPDX-License-Identifier: MIT

package grid

import "iter"

// Iterate walks the grid and calls visit with a cell snapshot and its
// zero-based traversal index.
//
//   - definedOnly=false: every coordinate exactly once, outer loop over x,
//     inner loop over y: (0,0), (0,1), …, (0,Rows()-1), (1,0), …
//   - definedOnly=true: only stored cells, in first-write order (overwrites
//     do not reorder).
//
// Snapshots pass through the post-read transform like Get, but no
// notify.KindGet events are published. A nil visit is a no-op.
// Complexity: O(Rows()×Columns()) full, O(defined) defined-only.
func (g *Grid) Iterate(visit Visitor, definedOnly bool) {
	if visit == nil {
		return
	}
	seq := g.All()
	if definedOnly {
		seq = g.Defined()
	}
	for i, c := range seq {
		visit(c, i)
	}
}

// ForEach is Iterate(visit, false).
func (g *Grid) ForEach(visit Visitor) { g.Iterate(visit, false) }

// ForEachDefined is Iterate(visit, true).
func (g *Grid) ForEachDefined(visit Visitor) { g.Iterate(visit, true) }

// All yields (index, cell) for every coordinate in full-iteration order.
// Breaking out of the range loop stops the walk.
func (g *Grid) All() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		i := 0
		for x := 0; x < g.cols; x++ {
			for y := 0; y < g.rows; y++ {
				if !yield(i, g.view(x, y)) {
					return
				}
				i++
			}
		}
	}
}

// Defined yields (index, cell) for stored cells in first-write order.
// The coordinates are fixed when the walk starts: cells the loop body adds
// are not yielded, and a cell it deletes before reaching it is skipped.
// Indexes count yielded cells only. Data is read at the moment each cell
// is yielded.
func (g *Grid) Defined() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		keys := make([]coord, 0, g.order.Len())
		for el := g.order.Front(); el != nil; el = el.Next() {
			e := el.Value.(*entry)
			keys = append(keys, coord{e.x, e.y})
		}
		i := 0
		for _, k := range keys {
			if _, ok := g.index[k]; !ok {
				continue
			}
			if !yield(i, g.view(k.x, k.y)) {
				return
			}
			i++
		}
	}
}
