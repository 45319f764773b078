// SPDX-License-Identifier: MIT

// Package gridgraph treats the defined cells of a sparse grid as a graph,
// enabling region analysis and minimal-fill "bridge" expansions.
//
// What:
//
//   - GridGraph snapshots a *grid.Grid: its extent, its defined cells (in
//     first-write order) and its default value.
//   - A cell is land when it is defined and GridOptions.Land accepts it
//     (every defined cell, when Land is nil).
//   - ConnectedComponents groups land cells into regions under Conn4/Conn8,
//     optionally only joining neighbours that GridOptions.Connects accepts.
//   - ExpandIsland finds the fewest non-land cells to fill so that two
//     regions touch, never crossing cells rejected by GridOptions.Blocked.
//
// Why:
//
//   - Board games: groups of stones, captured territory.
//   - Tile maps: islands, shortest bridges, reachable areas.
//
// Complexity (D = defined cells, A = cells explored, d = 4 or 8):
//
//   - NewGridGraph:        O(D), Memory: O(D).
//   - ConnectedComponents: O(D×d), Memory: O(D).
//   - ExpandIsland:        O(A×d), Memory: O(A); A ≤ W×H.
//
// Errors:
//
//   - ErrNilGrid: NewGridGraph called with a nil grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: blocked cells separate the two components.
package gridgraph
