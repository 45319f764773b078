// SPDX-License-Identifier: MIT

// Package grid: functional configuration for New.
// Options only record what the caller asked for; all validation happens in
// New so that a bad option yields ErrInvalidConfiguration instead of a panic.
package grid

// DEFAULTS - single source of truth for an option-less New().
const (
	// DefaultRows is the row count used when WithRows is not given.
	DefaultRows = 30

	// DefaultColumns is the column count used when WithColumns is not given.
	DefaultColumns = 30
)

// Option configures a Grid under construction.
type Option func(*options)

// options is the resolved configuration. Unexported: callers go through WithX.
type options struct {
	rows, cols int

	def    Record
	defSet bool // distinguishes WithDefaultValue(nil) from "not given"

	initial []Cell

	preStore  Transform
	postRead  Transform
	publisher Publisher
	readEvent bool
}

func defaultOptions() options {
	return options{rows: DefaultRows, cols: DefaultColumns}
}

// WithRows sets the number of rows (valid y is [0, n-1]). n must be > 0.
func WithRows(n int) Option {
	return func(o *options) { o.rows = n }
}

// WithColumns sets the number of columns (valid x is [0, n-1]). n must be > 0.
func WithColumns(n int) Option {
	return func(o *options) { o.cols = n }
}

// WithSize sets columns and rows together, in (x, y) order.
func WithSize(columns, rows int) Option {
	return func(o *options) {
		o.cols = columns
		o.rows = rows
	}
}

// WithDefaultValue sets the record returned for coordinates with no cell.
// The grid keeps its own deep copy; v must be a valid non-nil record.
func WithDefaultValue(v Record) Option {
	return func(o *options) {
		o.def = v
		o.defSet = true
	}
}

// WithInitialCells seeds the grid through the regular Set path, in order.
// A cell with nil Data is a delete and therefore a no-op on a new grid.
// Repeated use appends.
func WithInitialCells(cells ...Cell) Option {
	return func(o *options) { o.initial = append(o.initial, cells...) }
}

// WithPreStore installs a transform applied to every value just before Set
// stores it (initial cells included).
func WithPreStore(fn Transform) Option {
	return func(o *options) { o.preStore = fn }
}

// WithPostRead installs a transform applied to every value just before Get
// (and iteration) hands it out. Export is not affected.
func WithPostRead(fn Transform) Option {
	return func(o *options) { o.postRead = fn }
}

// WithNotifier attaches a change-notification sink. Events are published
// synchronously from inside the mutating call.
func WithNotifier(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithReadEvents additionally publishes notify.KindGet on every Get.
// It has no effect without WithNotifier.
func WithReadEvents() Option {
	return func(o *options) { o.readEvent = true }
}
