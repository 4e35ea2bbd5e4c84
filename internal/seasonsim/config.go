// Package seasonsim generates a synthetic pick'em season, submits it
// to a running service and verifies the rankings it serves.
package seasonsim

import "time"

// Default simulation constants.
const (
	DefaultPlayers      = 12
	DefaultPicksPerWeek = 4
	DefaultTimeout      = 30 * time.Second
)

// Config controls a simulation run.
type Config struct {
	BaseURL      string
	Players      int
	PicksPerWeek int
	Seed         int64
	Timeout      time.Duration
	Verbose      bool
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		BaseURL:      "http://localhost:9080",
		Players:      DefaultPlayers,
		PicksPerWeek: DefaultPicksPerWeek,
		Seed:         1,
		Timeout:      DefaultTimeout,
	}
}
