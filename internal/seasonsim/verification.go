package seasonsim

import (
	"fmt"
)

// verifyStandings checks the season table invariants: ranks start at
// one, totals never decrease down the table, tied totals share a rank,
// and points-from-first matches the rank-1 total.
func verifyStandings(rows []standingsRow) error {
	if len(rows) == 0 {
		return nil
	}
	if rows[0].Rank != 1 || rows[0].PointsFromFirst != 0 {
		return fmt.Errorf("first row has rank %d and delta %v: %w", rows[0].Rank, rows[0].PointsFromFirst, ErrVerification)
	}
	first := rows[0].TotalScore
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.TotalScore < prev.TotalScore {
			return fmt.Errorf("standings not ascending at %q: %w", cur.Player, ErrVerification)
		}
		wantRank := i + 1
		if cur.TotalScore == prev.TotalScore {
			wantRank = prev.Rank
		}
		if cur.Rank != wantRank {
			return fmt.Errorf("player %q has rank %d, want %d: %w", cur.Player, cur.Rank, wantRank, ErrVerification)
		}
		if cur.PointsFromFirst != cur.TotalScore-first {
			return fmt.Errorf("player %q has delta %v, want %v: %w", cur.Player, cur.PointsFromFirst, cur.TotalScore-first, ErrVerification)
		}
	}
	return nil
}

// verifyWeekly checks the trajectory invariants per week: every week
// label is in the domain, ranks within a week form a valid
// minimum-rank sequence, and no player appears twice in one week.
func verifyWeekly(weekly *weeklyResponse) error {
	weekOrder := make(map[string]int, len(weekly.Weeks))
	for i, w := range weekly.Weeks {
		weekOrder[w] = i
	}

	type weekAgg struct {
		ranks   []int
		players map[string]struct{}
	}
	byWeek := make(map[string]*weekAgg)
	for _, s := range weekly.Trajectory {
		if _, ok := weekOrder[s.Week]; !ok {
			return fmt.Errorf("trajectory week %q not in domain: %w", s.Week, ErrVerification)
		}
		agg := byWeek[s.Week]
		if agg == nil {
			agg = &weekAgg{players: make(map[string]struct{})}
			byWeek[s.Week] = agg
		}
		if _, dup := agg.players[s.Player]; dup {
			return fmt.Errorf("player %q ranked twice in %q: %w", s.Player, s.Week, ErrVerification)
		}
		agg.players[s.Player] = struct{}{}
		agg.ranks = append(agg.ranks, s.Rank)
	}

	for week, agg := range byWeek {
		seen := make(map[int]int, len(agg.ranks))
		for _, r := range agg.ranks {
			if r < 1 || r > len(agg.ranks) {
				return fmt.Errorf("week %q has rank %d outside 1..%d: %w", week, r, len(agg.ranks), ErrVerification)
			}
			seen[r]++
		}
		// Minimum-rank sequences: a rank r held by k players is
		// followed by the next rank at r+k.
		expected := 1
		for expected <= len(agg.ranks) {
			k, ok := seen[expected]
			if !ok {
				return fmt.Errorf("week %q missing rank %d: %w", week, expected, ErrVerification)
			}
			expected += k
		}
	}
	return nil
}
