package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/grid"
)

// scenarioGrid builds the reference 4×4 grid:
// (1,2)={a:1}, (3,3)={b:2}, (0,0)={c:3}, written in that order.
func scenarioGrid(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.WithRows(4), grid.WithColumns(4))
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 2, grid.Record{"a": 1}))
	require.NoError(t, g.Set(3, 3, grid.Record{"b": 2}))
	require.NoError(t, g.Set(0, 0, grid.Record{"c": 3}))

	return g
}

// TestIterate_Full visits 16 coordinates, outer x, inner y.
func TestIterate_Full(t *testing.T) {
	g := scenarioGrid(t)

	var got []grid.Cell
	g.Iterate(func(c grid.Cell, i int) {
		require.Equal(t, len(got), i, "index must be sequential")
		got = append(got, c)
	}, false)

	require.Len(t, got, 16)
	for i, c := range got {
		require.Equal(t, i/4, c.X, "visit %d", i)
		require.Equal(t, i%4, c.Y, "visit %d", i)
		switch i {
		case 0:
			assert.Equal(t, grid.Cell{X: 0, Y: 0, Data: grid.Record{"c": 3}}, c)
		case 6:
			assert.Equal(t, grid.Cell{X: 1, Y: 2, Data: grid.Record{"a": 1}}, c)
		case 15:
			assert.Equal(t, grid.Cell{X: 3, Y: 3, Data: grid.Record{"b": 2}}, c)
		default:
			assert.Equal(t, grid.Record{}, c.Data, "visit %d", i)
		}
	}
}

// TestIterate_Defined visits stored cells in first-write order.
func TestIterate_Defined(t *testing.T) {
	g := scenarioGrid(t)
	require.NoError(t, g.Set(1, 2, grid.Record{"a": 10}))

	var got []grid.Cell
	var idx []int
	g.ForEachDefined(func(c grid.Cell, i int) {
		got = append(got, c)
		idx = append(idx, i)
	})

	want := []grid.Cell{
		{X: 1, Y: 2, Data: grid.Record{"a": 10}},
		{X: 3, Y: 3, Data: grid.Record{"b": 2}},
		{X: 0, Y: 0, Data: grid.Record{"c": 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defined iteration mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, g.Len(), len(got))
}

// TestIterate_SnapshotsAreCopies: mutating a visited cell never reaches the grid.
func TestIterate_SnapshotsAreCopies(t *testing.T) {
	g := scenarioGrid(t)
	g.ForEach(func(c grid.Cell, _ int) { c.Data["dirty"] = true })
	g.ForEachDefined(func(c grid.Cell, _ int) { c.Data["dirty"] = true })

	for _, c := range g.Export().Cells {
		assert.NotContains(t, c.Data, "dirty")
	}
	assert.Empty(t, g.DefaultValue())
}

// TestIterate_NilVisitor is a no-op.
func TestIterate_NilVisitor(t *testing.T) {
	g := scenarioGrid(t)
	assert.NotPanics(t, func() { g.Iterate(nil, false) })
	assert.NotPanics(t, func() { g.Iterate(nil, true) })
}

// TestAll_Break stops the walk early.
func TestAll_Break(t *testing.T) {
	g := scenarioGrid(t)
	n := 0
	for i, c := range g.All() {
		n++
		if i == 6 {
			assert.Equal(t, grid.Record{"a": 1}, c.Data)
			break
		}
	}
	assert.Equal(t, 7, n)
}

// TestDefined_DeleteDuringWalk: cells deleted ahead of the walk are skipped,
// cells added during it are not visited.
func TestDefined_DeleteDuringWalk(t *testing.T) {
	g := scenarioGrid(t)
	var (
		got []grid.Cell
		idx []int
	)
	for i, c := range g.Defined() {
		if c.X == 1 {
			require.NoError(t, g.Delete(3, 3))
			require.NoError(t, g.Set(2, 2, grid.Record{"new": true}))
		}
		got = append(got, c)
		idx = append(idx, i)
	}

	assert.Equal(t, []grid.Cell{
		{X: 1, Y: 2, Data: grid.Record{"a": 1}},
		{X: 0, Y: 0, Data: grid.Record{"c": 3}},
	}, got)
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, 3, g.Len())
}

// TestIterate_Counts ties full and defined counts to Has.
func TestIterate_Counts(t *testing.T) {
	g, err := grid.New(grid.WithSize(5, 3))
	require.NoError(t, err)
	require.NoError(t, g.Set(4, 2, grid.Record{}))
	require.NoError(t, g.Set(0, 1, grid.Record{}))

	full, defined, has := 0, 0, 0
	g.ForEach(func(c grid.Cell, _ int) {
		full++
		ok, err := g.Has(c.X, c.Y)
		require.NoError(t, err)
		if ok {
			has++
		}
	})
	g.ForEachDefined(func(grid.Cell, int) { defined++ })

	assert.Equal(t, 15, full)
	assert.Equal(t, 2, defined)
	assert.Equal(t, has, defined)
}
