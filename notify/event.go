// SPDX-License-Identifier: MIT

package notify

import (
	"errors"

	"github.com/katalvlaran/sparsegrid/internal/record"
)

// Sentinel errors for notify operations.
var (
	// ErrNilHandler indicates Subscribe was called with a nil handler.
	ErrNilHandler = errors.New("notify: handler is nil")

	// ErrUnknownSubscription indicates Unsubscribe referenced an ID the Hub does not hold.
	ErrUnknownSubscription = errors.New("notify: unknown subscription id")
)

// Kind names the mutation (or read) an Event describes.
type Kind string

const (
	// KindSet fires on every successful write carrying a value.
	KindSet Kind = "set"

	// KindDelete fires on every delete that removed an existing cell.
	KindDelete Kind = "delete"

	// KindUpdate fires alongside both KindSet and KindDelete, for consumers
	// that do not care about direction.
	KindUpdate Kind = "update"

	// KindGet fires on reads, only when the publisher opted into read events.
	KindGet Kind = "get"
)

// Kinds lists every known Kind.
var Kinds = []Kind{KindSet, KindDelete, KindUpdate, KindGet}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindSet, KindDelete, KindUpdate, KindGet:
		return true
	}

	return false
}

// Event is the payload published for a single cell.
// Data is nil for KindDelete (and for the KindUpdate that accompanies it).
type Event struct {
	Kind Kind           `json:"kind"`
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Data map[string]any `json:"data"`
}

// Clone returns an Event whose Data shares nothing with e.
// Complexity: O(size of Data).
func (e Event) Clone() Event {
	out := e
	if e.Data != nil {
		out.Data = record.Clone(e.Data)
	}

	return out
}
