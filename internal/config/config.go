// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Defaults come from New; Load layers file and env on top.
// - External errors are wrapped via this package's error kinds.
package config

import (
	"fmt"
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Weeks is the ordered week domain for the season. Ordering here
	// is canonical; it is never derived from the labels themselves.
	Weeks []string `koanf:"weeks"`

	// QueueSize bounds the in-memory submission queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingestion workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the submission idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// PicksFile, LogosFile and WinnersFile locate the season sheet
	// exports loaded at startup. Empty paths are skipped.
	PicksFile   string `koanf:"picks_file"`
	LogosFile   string `koanf:"logos_file"`
	WinnersFile string `koanf:"winners_file"`
}

// New creates a Config with defaults: the standard 16-week season plus
// the bowls, and no seed files.
func New() *Config {
	weeks := make([]string, 0, 17)
	for i := 1; i <= 16; i++ {
		weeks = append(weeks, fmt.Sprintf("Week %d", i))
	}
	weeks = append(weeks, "Bowls")

	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		Weeks:       weeks,
		QueueSize:   10_000,
		WorkerCount: runtime.NumCPU() * 2,
		DedupeSize:  50_000,
	}
}
