// SPDX-License-Identifier: MIT

package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Handler receives one Event. It runs on the publisher's goroutine.
type Handler func(Event)

// subscription binds a Handler to the kinds it asked for.
// An empty kinds set means "every kind".
type subscription struct {
	id      string
	kinds   map[Kind]struct{}
	handler Handler
}

func (s *subscription) wants(k Kind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	_, ok := s.kinds[k]

	return ok
}

// Hub is a synchronous, in-process event fan-out.
// The zero value is ready to use.
type Hub struct {
	mu   sync.RWMutex
	subs []*subscription // subscription order == delivery order
}

// NewHub returns an empty Hub.
// Complexity: O(1).
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers h for the given kinds (all kinds when none are given)
// and returns an opaque subscription ID for Unsubscribe.
// Unknown kinds are kept; they simply never match a published Event.
// Returns ErrNilHandler if h is nil.
// Complexity: O(len(kinds)).
func (h *Hub) Subscribe(handler Handler, kinds ...Kind) (string, error) {
	if handler == nil {
		return "", ErrNilHandler
	}
	s := &subscription{id: uuid.NewString(), handler: handler}
	if len(kinds) > 0 {
		s.kinds = make(map[Kind]struct{}, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = struct{}{}
		}
	}

	h.mu.Lock()
	h.subs = append(h.subs, s)
	h.mu.Unlock()

	return s.id, nil
}

// On is shorthand for Subscribe with a single kind.
func (h *Hub) On(kind Kind, handler Handler) (string, error) {
	return h.Subscribe(handler, kind)
}

// Unsubscribe removes the subscription with the given ID.
// Delivery order of the remaining subscriptions is preserved.
// Returns ErrUnknownSubscription if id is not registered.
// Complexity: O(S), S = number of subscriptions.
func (h *Hub) Unsubscribe(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id != id {
			continue
		}
		h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
		return nil
	}

	return ErrUnknownSubscription
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Publish delivers e to every subscription interested in e.Kind, in
// subscription order. Each handler gets its own copy of e.Data.
// The subscriber list is snapshotted first, so handlers may call
// Subscribe/Unsubscribe without deadlocking; such changes apply from
// the next Publish.
// Complexity: O(S + matched·|Data|).
func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	snapshot := make([]*subscription, len(h.subs))
	copy(snapshot, h.subs)
	h.mu.RUnlock()

	for _, s := range snapshot {
		if s.wants(e.Kind) {
			s.handler(e.Clone())
		}
	}
}
