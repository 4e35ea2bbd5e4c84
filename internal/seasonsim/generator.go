package seasonsim

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/gridrank/gridrank/internal/domain/season"
)

// Pick is one generated submission payload.
type Pick struct {
	SubmissionID string  `json:"submission_id"`
	Player       string  `json:"player"`
	Week         string  `json:"week"`
	Role         string  `json:"role"`
	Pick         string  `json:"pick"`
	Team         string  `json:"team"`
	Opponent     string  `json:"opponent"`
	Score        float64 `json:"score"`
}

var roles = []string{"Passing", "Rushing", "Receiving", "Defensive"}

// Generate builds a deterministic synthetic season. Some players join
// late and some stop mid-season, so the verification pass exercises
// the activity-cutoff behavior, not just the happy path.
func Generate(cfg *Config, weeks season.Weeks) []Pick {
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible runs

	picks := make([]Pick, 0, cfg.Players*weeks.Len()*cfg.PicksPerWeek)
	for p := 0; p < cfg.Players; p++ {
		player := fmt.Sprintf("Player %02d", p+1)

		// Window of weeks the player participates in.
		first := 0
		last := weeks.Len() - 1
		switch {
		case p%5 == 3: // joins late
			first = 1 + rng.Intn(weeks.Len()/2)
		case p%5 == 4: // drops out
			last = weeks.Len()/2 + rng.Intn(weeks.Len()/2-1)
		}

		for w := first; w <= last; w++ {
			for i := 0; i < cfg.PicksPerWeek; i++ {
				picks = append(picks, Pick{
					SubmissionID: uuid.NewString(),
					Player:       player,
					Week:         weeks.Label(w),
					Role:         roles[i%len(roles)],
					Pick:         fmt.Sprintf("Athlete %d", rng.Intn(500)),
					Team:         fmt.Sprintf("Team %d", rng.Intn(60)),
					Opponent:     fmt.Sprintf("Team %d", rng.Intn(60)),
					Score:        float64(rng.Intn(2000) - 200),
				})
			}
		}
	}
	return picks
}
