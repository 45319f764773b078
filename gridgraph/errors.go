// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrNilGrid indicates NewGridGraph received a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
