// Package sparsegrid is a bounded, sparse two-dimensional store for
// grid-shaped state: board games, spreadsheets, tile maps.
//
// A grid has a fixed number of rows and columns, but only cells that were
// explicitly written consume memory; every other coordinate reads as the
// grid's default value.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/       the sparse store: bounds contract, deep-copy boundary,
//	            full and defined-only iteration, JSON/YAML snapshots
//	notify/     synchronous change notification (set/delete/update/get)
//	gridgraph/  regions of defined cells and minimal-fill bridges
//
// Quick ASCII example (4×4, three defined cells):
//
//	x→  0 1 2 3
//	y0  c . . .
//	y1  . . . .
//	y2  . a . .
//	y3  . . . b
//
// Full iteration visits all 16 coordinates column by column; defined-only
// iteration visits a, b, c in the order they were written.
//
//	go get github.com/katalvlaran/sparsegrid
package sparsegrid
