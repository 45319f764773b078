// SPDX-License-Identifier: MIT

package notify

import (
	"context"
	"log/slog"
)

// LogObserver returns a Handler that records each Event on logger at Debug
// level. A nil logger falls back to slog.Default().
//
// Typical wiring:
//
//	hub := notify.NewHub()
//	_, _ = hub.Subscribe(notify.LogObserver(logger))
func LogObserver(logger *slog.Logger) Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(e Event) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "grid cell event",
			slog.String("kind", string(e.Kind)),
			slog.Int("x", e.X),
			slog.Int("y", e.Y),
			slog.Bool("has_data", e.Data != nil),
		)
	}
}
