package ecs

import "github.com/rs/zerolog"

// defaultCapacity is the initial bucket count for a newly created per-type
// binding table.
const defaultCapacity = 64

// Option configures a World at construction time.
type Option func(*World)

// WithLogger attaches a structured logger. Lifecycle operations emit
// debug-level events; the default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithCapacity sets the initial capacity hint for per-type binding tables.
// Values below one are ignored.
func WithCapacity(capacity int) Option {
	return func(w *World) {
		if capacity > 0 {
			w.capacity = capacity
		}
	}
}
