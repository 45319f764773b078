// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/sparsegrid/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// CellPredicate classifies a cell snapshot. It must not mutate c.Data:
// for undefined coordinates the record is shared with other calls.
type CellPredicate func(c grid.Cell) bool

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Land narrows which defined cells count as land. Nil means all of them.
	Land CellPredicate
	// Connects decides whether two adjacent land cells share a region
	// (e.g. stones of the same colour). Nil means all adjacent land joins.
	Connects func(a, b grid.Cell) bool
	// Blocked marks non-land cells that ExpandIsland may not fill.
	// It sees defined non-land cells and, for empty coordinates, the
	// default value. Nil means nothing is blocked.
	Blocked CellPredicate
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn4, every defined cell is land, nothing is blocked.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable analysis view over a grid snapshot.
// Width and Height mirror grid.Columns() and grid.Rows().
type GridGraph struct {
	Width, Height int
	Conn          Connectivity

	cells    map[Point]grid.Cell // defined cells, deep copies
	order    []Point             // first-write order of cells
	def      grid.Record         // default value shared with predicates
	land     map[Point]struct{}
	connects func(a, b grid.Cell) bool
	blocked  CellPredicate

	neighborOffsets [][2]int
}
