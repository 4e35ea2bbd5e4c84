package worker

import (
	"github.com/gridrank/gridrank/pkg/logger"
)

// Option applies a configuration option to the Worker.
type Option func(*Worker)

// WithName sets the worker name used in logs.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.logger = logger.Get().Named(name)
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRejecter sets the idempotency release hook for invalid
// submissions.
func WithRejecter(r Rejecter) Option {
	return func(w *Worker) {
		w.rejecter = r
	}
}
