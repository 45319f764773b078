// SPDX-License-Identifier: MIT

// Package record validates and deep-copies JSON-shaped values.
//
// A record is a non-nil map[string]any whose leaves are JSON-shaped:
// nil, bool, string, any Go integer kind, finite floats, well-formed json.Number,
// nested map[string]any and []any. Restricting values to this shape keeps
// every stored record exportable and makes Clone exhaustive.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxDepth bounds container nesting. It also stops self-referencing maps,
// which would otherwise recurse forever.
const MaxDepth = 256

var (
	// ErrNil indicates a nil map where a record was required.
	ErrNil = errors.New("record: nil record")

	// ErrUnsupported indicates a leaf whose type is not JSON-shaped.
	ErrUnsupported = errors.New("record: unsupported value type")

	// ErrNonFinite indicates a NaN or ±Inf float leaf.
	ErrNonFinite = errors.New("record: NaN or Inf value")

	// ErrBadNumber indicates a json.Number that is not a finite JSON number literal.
	ErrBadNumber = errors.New("record: malformed number")

	// ErrTooDeep indicates nesting beyond MaxDepth.
	ErrTooDeep = errors.New("record: nesting too deep")
)

// As reports whether v is a record and returns it typed.
// A nil map is not a record.
func As(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}

	return m, true
}

// Validate checks that m is a non-nil record with JSON-shaped contents.
// Errors carry the offending path, e.g. `record: unsupported value type at "a.b[2]" (chan int)`.
// Complexity: O(size of m).
func Validate(m map[string]any) error {
	if m == nil {
		return ErrNil
	}

	return validateMap(m, "", 0)
}

func validateMap(m map[string]any, path string, depth int) error {
	if depth >= MaxDepth {
		return fmt.Errorf("%w at %q", ErrTooDeep, path)
	}
	for k, v := range m {
		if err := validateAny(v, join(path, k), depth+1); err != nil {
			return err
		}
	}

	return nil
}

func validateAny(v any, path string, depth int) error {
	switch t := v.(type) {
	case json.Number:
		return checkNumber(t, path)
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return nil
	case float32:
		return checkFinite(float64(t), path)
	case float64:
		return checkFinite(t, path)
	case map[string]any:
		return validateMap(t, path, depth)
	case []any:
		if depth >= MaxDepth {
			return fmt.Errorf("%w at %q", ErrTooDeep, path)
		}
		for i, e := range t {
			if err := validateAny(e, fmt.Sprintf("%s[%d]", path, i), depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w at %q (%T)", ErrUnsupported, path, v)
	}
}

// checkNumber accepts exactly what encoding/json will write back out.
func checkNumber(n json.Number, path string) error {
	s := string(n)
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) || !json.Valid([]byte(s)) || strings.TrimSpace(s) != s {
		return fmt.Errorf("%w at %q (%q)", ErrBadNumber, path, s)
	}
	if _, err := n.Float64(); err != nil {
		return fmt.Errorf("%w at %q (%q)", ErrBadNumber, path, s)
	}

	return nil
}

func checkFinite(f float64, path string) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w at %q", ErrNonFinite, path)
	}

	return nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

// Clone returns a deep copy of m. Nil in, nil out.
// Callers are expected to have validated m; leaves outside the JSON shape
// are copied by value.
// Complexity: O(size of m).
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}

	return out
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Clone(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneAny(t[i])
		}
		return out
	default:
		return v
	}
}

// Plain is Clone with every json.Number resolved to int64 (when integral)
// or float64, for encoders that would otherwise emit numbers as strings.
func Plain(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainAny(v)
	}

	return out
}

func plainAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Plain(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i := range t {
			out[i] = plainAny(t[i])
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
