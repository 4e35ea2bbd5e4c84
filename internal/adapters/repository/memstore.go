package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/pkg/metrics"
)

// MemStore implements Store with an append-only in-memory slice
// guarded by an RWMutex. The season sheet is small (a few hundred
// rows), so copies on read are cheap and keep callers fully isolated.
type MemStore struct {
	mu      sync.RWMutex
	picks   []model.Pick
	players map[string]struct{}
	logos   map[string]string
	winners []model.PastWinner
	closed  bool
}

// NewMemStore creates an empty season store.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		players: make(map[string]struct{}),
		logos:   make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds picks to the season.
func (s *MemStore) Append(_ context.Context, picks ...model.Pick) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	for _, p := range picks {
		s.picks = append(s.picks, p)
		s.players[strings.TrimSpace(p.Player)] = struct{}{}
	}
	metrics.UpdatePickCount(len(s.picks))
	metrics.UpdatePlayerCount(len(s.players))
	return nil
}

// Picks returns a copy of all picks, in insertion order.
func (s *MemStore) Picks(_ context.Context) []model.Pick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Pick, len(s.picks))
	copy(out, s.picks)
	return out
}

// Events returns the ranking projection of all picks.
func (s *MemStore) Events(_ context.Context) []model.ScoreEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ScoreEvent, len(s.picks))
	for i, p := range s.picks {
		out[i] = p.Event()
	}
	return out
}

// SetLogos replaces the team logo map.
func (s *MemStore) SetLogos(_ context.Context, logos map[string]string) {
	cp := make(map[string]string, len(logos))
	for team, url := range logos {
		cp[team] = url
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logos = cp
}

// Logos returns a copy of the team logo map.
func (s *MemStore) Logos(_ context.Context) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.logos))
	for team, url := range s.logos {
		out[team] = url
	}
	return out
}

// SetPastWinners replaces the historical results.
func (s *MemStore) SetPastWinners(_ context.Context, winners []model.PastWinner) {
	cp := make([]model.PastWinner, len(winners))
	copy(cp, winners)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.winners = cp
}

// PastWinners returns a copy of the historical results.
func (s *MemStore) PastWinners(_ context.Context) []model.PastWinner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.PastWinner, len(s.winners))
	copy(out, s.winners)
	return out
}

// Counts returns the number of picks and distinct players.
func (s *MemStore) Counts(_ context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.picks), len(s.players)
}

// Close marks the store read-only; further Appends fail with
// ErrClosed.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
