// Package repository defines the season store interface and errors.
package repository

import (
	"context"

	"github.com/gridrank/gridrank/internal/domain/model"
)

// Store holds the season's picks plus the reference sheets. Writes
// come from startup ingestion and accepted submissions; reads hand out
// snapshot copies so the ranking engine never sees shared mutable
// state and recomputes from scratch on every request.
type Store interface {
	// Append adds picks to the season.
	Append(ctx context.Context, picks ...model.Pick) error

	// Picks returns a copy of all picks, in insertion order.
	Picks(ctx context.Context) []model.Pick

	// Events returns the ranking projection of all picks.
	Events(ctx context.Context) []model.ScoreEvent

	// SetLogos replaces the team logo map.
	SetLogos(ctx context.Context, logos map[string]string)

	// Logos returns a copy of the team logo map.
	Logos(ctx context.Context) map[string]string

	// SetPastWinners replaces the historical results.
	SetPastWinners(ctx context.Context, winners []model.PastWinner)

	// PastWinners returns a copy of the historical results.
	PastWinners(ctx context.Context) []model.PastWinner

	// Counts returns the number of picks and distinct players.
	Counts(ctx context.Context) (picks, players int)
}
