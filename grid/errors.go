// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Match them with errors.Is.
var (
	// ErrOutOfBounds indicates a coordinate that is not an integer within the grid.
	// It always arrives wrapped in a *BoundsError carrying the valid range.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidValue indicates a value that is not a JSON-shaped record, or an
	// import argument that is not a sequence of records.
	ErrInvalidValue = errors.New("grid: invalid value")

	// ErrInvalidConfiguration indicates a construction option failed validation.
	ErrInvalidConfiguration = errors.New("grid: invalid configuration")
)

// BoundsError reports a failed bounds check on a single axis.
// Min and Max are inclusive.
type BoundsError struct {
	Axis  string // "x" or "y"
	Value any    // offending coordinate as supplied
	Min   int
	Max   int
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s=%v, want integer in [%d, %d]", ErrOutOfBounds, e.Axis, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is(err, ErrOutOfBounds) succeed.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}
