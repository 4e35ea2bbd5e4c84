// Package breakdown aggregates pick scores by role for the
// performance-breakdown view.
package breakdown

import (
	"sort"
	"strings"

	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/internal/domain/standings"
)

// Roles is the fixed category order of the season sheet. Unknown roles
// on a pick are rejected at ingestion, not here.
var Roles = []string{"Passing", "Rushing", "Receiving", "Defensive"}

// RoleRow is one week's score totals per role. Weeks with no picks in
// a role total zero, so every row carries all four columns.
type RoleRow struct {
	Week   string             `json:"week"`
	Totals map[string]float64 `json:"totals"`
	Total  float64            `json:"total"`
}

// WeeklyRoleTotals pivots picks into per-week, per-role score totals,
// rows in week-domain order. Weeks with no picks at all are omitted.
func WeeklyRoleTotals(picks []model.Pick, weeks season.Weeks) ([]RoleRow, error) {
	byWeek := make(map[int]map[string]float64)
	for _, p := range picks {
		w, ok := weeks.Index(strings.TrimSpace(p.Week))
		if !ok {
			return nil, &standings.InvalidWeekError{Week: p.Week, Player: p.Player}
		}
		totals := byWeek[w]
		if totals == nil {
			totals = make(map[string]float64, len(Roles))
			byWeek[w] = totals
		}
		totals[p.Role] += p.Score
	}

	indexes := make([]int, 0, len(byWeek))
	for w := range byWeek {
		indexes = append(indexes, w)
	}
	sort.Ints(indexes)

	rows := make([]RoleRow, 0, len(indexes))
	for _, w := range indexes {
		row := RoleRow{Week: weeks.Label(w), Totals: make(map[string]float64, len(Roles))}
		for _, role := range Roles {
			v := byWeek[w][role]
			row.Totals[role] = v
			row.Total += v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// PlayerWeekPicks returns one player's picks in one week, ordered by
// score ascending. Player matching is whitespace-insensitive.
func PlayerWeekPicks(picks []model.Pick, player, week string) []model.Pick {
	player = strings.TrimSpace(player)
	out := make([]model.Pick, 0, 4)
	for _, p := range picks {
		if strings.TrimSpace(p.Player) == player && strings.TrimSpace(p.Week) == week {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Selection < out[j].Selection
	})
	return out
}
