// Package model contains domain records passed between layers.
package model

// ScoreEvent is one scored pick by one player in one week. It is the
// only shape the ranking engine consumes; everything else on a Pick is
// presentation data.
type ScoreEvent struct {
	Player string  // player identity, whitespace-insensitive
	Week   string  // label from the configured week domain
	Score  float64 // signed; lower is better in this game
}

// Pick is a full row from the season sheet. A player may have several
// picks in the same week; the engine sums them.
type Pick struct {
	Player    string
	Week      string
	Role      string // Passing, Rushing, Receiving, Defensive
	Selection string // the athlete picked
	Team      string
	Opponent  string
	Score     float64
}

// Event projects the pick down to what the ranking engine needs.
func (p Pick) Event() ScoreEvent {
	return ScoreEvent{Player: p.Player, Week: p.Week, Score: p.Score}
}

// PastWinner is one row of the historical results sheet.
type PastWinner struct {
	Year   int
	Rank   int
	Player string
	Score  float64
}
