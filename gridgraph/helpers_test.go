package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/grid"
)

// fromRows builds a grid from a dense picture: rows[y][x] > 0 becomes a
// cell {"id": value}; cells are written row by row, left to right.
func fromRows(t testing.TB, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.WithSize(len(rows[0]), len(rows)))
	require.NoError(t, err)
	for y, row := range rows {
		for x, v := range row {
			if v > 0 {
				require.NoError(t, g.Set(x, y, grid.Record{"id": v}))
			}
		}
	}

	return g
}

// sameID joins neighbours carrying the same "id".
func sameID(a, b grid.Cell) bool {
	return a.Data["id"] == b.Data["id"]
}
