// SPDX-License-Identifier: MIT

package grid

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/sparsegrid/internal/record"
)

// IsValidX reports whether x is a column index of g.
// Pure; Complexity: O(1).
func (g *Grid) IsValidX(x int) bool {
	return x >= 0 && x < g.cols
}

// IsValidY reports whether y is a row index of g.
// Pure; Complexity: O(1).
func (g *Grid) IsValidY(y int) bool {
	return y >= 0 && y < g.rows
}

// checkBounds is the single bounds gate used by every accessor.
// x is checked first, so a doubly-invalid pair reports the x axis.
func (g *Grid) checkBounds(x, y int) error {
	if !g.IsValidX(x) {
		return &BoundsError{Axis: "x", Value: x, Min: 0, Max: g.cols - 1}
	}
	if !g.IsValidY(y) {
		return &BoundsError{Axis: "y", Value: y, Min: 0, Max: g.rows - 1}
	}

	return nil
}

// validateValue maps record validation failures onto ErrInvalidValue.
func validateValue(v Record) error {
	if err := record.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	return nil
}

// coordinate converts a loosely typed decoded number into an int.
// Only integral values are accepted: 2, 2.0 and json.Number("2") pass,
// 1.5, "2" and nil do not.
func coordinate(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int8:
		return int(t), true
	case int16:
		return int(t), true
	case int32:
		return int(t), true
	case int64:
		return int64ToInt(t)
	case uint:
		return uint64ToInt(uint64(t))
	case uint8:
		return int(t), true
	case uint16:
		return int(t), true
	case uint32:
		return uint64ToInt(uint64(t))
	case uint64:
		return uint64ToInt(t)
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int64ToInt(i)
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}

	return 0, false
}

func int64ToInt(i int64) (int, bool) {
	if i < math.MinInt || i > math.MaxInt {
		return 0, false
	}

	return int(i), true
}

func uint64ToInt(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}

	return int(u), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}

	return int(f), true
}
