// SPDX-License-Identifier: MIT

// Package grid implements a bounded two-dimensional sparse grid.
//
// What:
//
//   - A fixed Rows()×Columns() coordinate space. Every coordinate without a
//     stored Cell reads as the grid's default value; only written cells
//     consume memory.
//   - Dual indexing: a coordinate map for O(1) point access plus a
//     first-write-ordered list for O(defined) traversal.
//   - Copy-on-read / copy-on-write: every Record crossing the API boundary
//     (Set input, Get result, iteration snapshot, Export) is an independent
//     deep copy.
//
// Why:
//
//   - Board games, spreadsheets, tile maps: grid-shaped state without
//     W×H allocation.
//
// Coordinates:
//
//	x ∈ [0, Columns()-1], y ∈ [0, Rows()-1]
//
// Full iteration runs the outer loop over x and the inner loop over y:
// (0,0), (0,1), …, (0,Rows()-1), (1,0), … The sequential index handed to a
// Visitor follows that order.
//
// Options:
//
//   - WithRows / WithColumns (default 30×30), WithDefaultValue (default {}),
//     WithInitialCells.
//   - WithPreStore / WithPostRead transforms.
//   - WithNotifier (+ WithReadEvents) for change notification, see package notify.
//
// Errors:
//
//   - ErrOutOfBounds (as *BoundsError): coordinate outside the grid.
//   - ErrInvalidValue: value is not a JSON-shaped record (or import input is
//     not a sequence of records).
//   - ErrInvalidConfiguration: construction option failed validation.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. Callers sharing a Grid across
//	goroutines must serialize access themselves. Notifications are
//	delivered synchronously inside the mutating call.
//
// Complexity:
//
//   - Get, Has, Set, Delete: O(1) + O(|data|) for the copy.
//   - Defined-only iteration, Export, Clone: O(defined).
//   - Full iteration: O(Rows()×Columns()).
package grid
