// SPDX-License-Identifier: MIT

// Package notify is the change-notification side channel of a sparse grid.
//
// What:
//
//   - Kind enumerates the four event kinds: set, delete, update, get.
//   - Event carries the coordinate and a private copy of the cell data.
//   - Hub fans events out to subscribers, synchronously and in subscription order.
//   - LogObserver turns events into structured slog records.
//
// Delivery model:
//
//   - Publish runs every matching handler in-line, on the caller's goroutine.
//     A slow handler slows the write that triggered it; a panicking handler
//     unwinds through the write. There is no buffering and no retry.
//   - The publisher never depends on subscriber presence: publishing to an
//     empty Hub is a no-op.
//   - Each handler receives its own deep copy of Event.Data, so handlers cannot
//     observe each other's mutations.
//
// Concurrency:
//
//   - Hub is safe for concurrent Subscribe/Unsubscribe/Publish. Handlers are
//     invoked outside the Hub lock, so a handler may (un)subscribe.
//
// Errors:
//
//   - ErrNilHandler: Subscribe called with a nil handler.
//   - ErrUnknownSubscription: Unsubscribe called with an unknown ID.
package notify
