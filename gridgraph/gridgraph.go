// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/sparsegrid/grid"

// NewGridGraph snapshots g. Later writes to g are not reflected.
// The snapshot is taken through defined-only iteration, so it publishes no
// read events on g's notifier.
// Returns ErrNilGrid if g is nil.
// Complexity: O(D) time and memory.
func NewGridGraph(g *grid.Grid, opts GridOptions) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	gg := &GridGraph{
		Width:    g.Columns(),
		Height:   g.Rows(),
		Conn:     opts.Conn,
		cells:    make(map[Point]grid.Cell, g.Len()),
		order:    make([]Point, 0, g.Len()),
		def:      g.DefaultValue(),
		land:     make(map[Point]struct{}, g.Len()),
		connects: opts.Connects,
		blocked:  opts.Blocked,
	}
	g.ForEachDefined(func(c grid.Cell, _ int) {
		p := Point{c.X, c.Y}
		gg.cells[p] = c
		gg.order = append(gg.order, p)
		if opts.Land == nil || opts.Land(c) {
			gg.land[p] = struct{}{}
		}
	})
	// Precompute neighbor offsets based on connectivity
	if opts.Conn == Conn8 {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return gg, nil
}

// From is NewGridGraph with DefaultGridOptions and the given connectivity.
func From(g *grid.Grid, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(g, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether p is a land cell.
// Complexity: O(1).
func (gg *GridGraph) IsLand(p Point) bool {
	_, ok := gg.land[p]
	return ok
}

// joins reports whether adjacent land cells u and v belong together.
func (gg *GridGraph) joins(u, v Point) bool {
	if gg.connects == nil {
		return true
	}

	return gg.connects(gg.cells[u], gg.cells[v])
}

// isBlocked reports whether non-land p may not be filled.
func (gg *GridGraph) isBlocked(p Point) bool {
	if gg.blocked == nil {
		return false
	}
	c, ok := gg.cells[p]
	if !ok {
		c = grid.Cell{X: p.X, Y: p.Y, Data: gg.def}
	}

	return gg.blocked(c)
}
