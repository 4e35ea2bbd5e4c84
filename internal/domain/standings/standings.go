// Package standings computes season standings and the weekly
// cumulative-rank trajectory from scored picks.
//
// Both entry points are pure functions: they never mutate their inputs,
// keep no state between calls, and return deterministically ordered
// output, so they are safe to call from concurrent request handlers.
// Lower score is better throughout.
package standings

import (
	"sort"
	"strings"

	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
)

// Row is one line of the season standings table.
type Row struct {
	Rank            int     `json:"rank"`
	Player          string  `json:"player"`
	TotalScore      float64 `json:"total_score"`
	PointsFromFirst float64 `json:"points_from_first"`
}

// RankSnapshot is one player's rank in one week. Only (player, week)
// pairs with a defined cumulative score produce a snapshot.
type RankSnapshot struct {
	Week   string `json:"week"`
	Player string `json:"player"`
	Rank   int    `json:"rank"`
}

// timeline is a player's week-indexed cumulative score. defined is the
// inclusive window [first event week, last event week]; outside it the
// cumulative value is absent, which distinguishes "not joined yet" and
// "left the competition" from a mid-season bye.
type timeline struct {
	player    string
	cum       []float64
	first     int
	last      int // lastActiveWeek index
}

func (t timeline) definedAt(week int) bool {
	return week >= t.first && week <= t.last
}

// ComputeStandings returns the season table: total score per player,
// ascending, with each player's distance from first place.
//
// Ties share the minimum rank of their group (competition ranking),
// matching the weekly trajectory policy; tied players are ordered by
// name for determinism.
func ComputeStandings(events []model.ScoreEvent) []Row {
	totals := make(map[string]float64)
	for _, e := range events {
		p := strings.TrimSpace(e.Player)
		if p == "" {
			continue
		}
		totals[p] += e.Score
	}
	if len(totals) == 0 {
		return []Row{}
	}

	rows := make([]Row, 0, len(totals))
	for p, total := range totals {
		rows = append(rows, Row{Player: p, TotalScore: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalScore != rows[j].TotalScore {
			return rows[i].TotalScore < rows[j].TotalScore
		}
		return rows[i].Player < rows[j].Player
	})

	first := rows[0].TotalScore
	for i := range rows {
		if i > 0 && rows[i].TotalScore == rows[i-1].TotalScore {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
		rows[i].PointsFromFirst = rows[i].TotalScore - first
	}
	return rows
}

// ComputeTrajectory returns per-week ranks for every player with a
// defined cumulative score in that week, ordered by week-domain
// position, then rank, then player.
//
// Any event whose week label is not in the domain fails the whole
// batch with an *InvalidWeekError; valid events are never reordered or
// partially processed.
func ComputeTrajectory(events []model.ScoreEvent, weeks season.Weeks) ([]RankSnapshot, error) {
	timelines, err := buildTimelines(events, weeks)
	if err != nil {
		return nil, err
	}

	out := make([]RankSnapshot, 0, len(timelines)*weeks.Len())
	for w := 0; w < weeks.Len(); w++ {
		out = append(out, rankWeek(timelines, weeks.Label(w), w)...)
	}
	return out, nil
}

// buildTimelines runs the normalize, expand and accumulate stages:
// per-player weekly sums over the dense week grid, running sum with
// gaps carried forward, then the activity cutoff. Filling happens
// before the cutoff; the other order would resurrect stale values.
func buildTimelines(events []model.ScoreEvent, weeks season.Weeks) ([]timeline, error) {
	weekly := make(map[string]map[int]float64) // player -> week index -> summed score
	firstSeen := make(map[string]int)
	lastSeen := make(map[string]int)

	for _, e := range events {
		player := strings.TrimSpace(e.Player)
		if player == "" {
			continue
		}
		w, ok := weeks.Index(strings.TrimSpace(e.Week))
		if !ok {
			return nil, &InvalidWeekError{Week: e.Week, Player: player}
		}
		byWeek := weekly[player]
		if byWeek == nil {
			byWeek = make(map[int]float64)
			weekly[player] = byWeek
			firstSeen[player] = w
			lastSeen[player] = w
		}
		byWeek[w] += e.Score
		if w < firstSeen[player] {
			firstSeen[player] = w
		}
		if w > lastSeen[player] {
			lastSeen[player] = w
		}
	}

	players := make([]string, 0, len(weekly))
	for p := range weekly {
		players = append(players, p)
	}
	sort.Strings(players)

	timelines := make([]timeline, 0, len(players))
	for _, p := range players {
		t := timeline{
			player: p,
			cum:    make([]float64, weeks.Len()),
			first:  firstSeen[p],
			last:   lastSeen[p],
		}
		running := 0.0
		for w := t.first; w <= t.last; w++ {
			running += weekly[p][w] // zero for bye weeks: forward fill
			t.cum[w] = running
		}
		timelines = append(timelines, t)
	}
	return timelines, nil
}

// rankWeek ranks every timeline defined at week index w. Ties receive
// the minimum rank of their group; the score after a k-way tie for
// rank r gets rank r+k.
func rankWeek(timelines []timeline, label string, w int) []RankSnapshot {
	type scored struct {
		player string
		cum    float64
	}
	active := make([]scored, 0, len(timelines))
	for _, t := range timelines {
		if t.definedAt(w) {
			active = append(active, scored{player: t.player, cum: t.cum[w]})
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].cum != active[j].cum {
			return active[i].cum < active[j].cum
		}
		return active[i].player < active[j].player
	})

	snaps := make([]RankSnapshot, len(active))
	rank := 0
	for i, s := range active {
		if i == 0 || s.cum != active[i-1].cum {
			rank = i + 1
		}
		snaps[i] = RankSnapshot{Week: label, Player: s.player, Rank: rank}
	}
	return snaps
}
