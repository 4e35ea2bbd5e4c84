package repository

import (
	"strings"

	"github.com/gridrank/gridrank/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialPicks seeds the store with picks at construction.
func WithInitialPicks(picks []model.Pick) Option {
	return func(s *MemStore) {
		s.picks = append(s.picks, picks...)
		for _, p := range picks {
			s.players[strings.TrimSpace(p.Player)] = struct{}{}
		}
	}
}
