// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/gridrank/gridrank/internal/domain/standings"
)

// StandingsDependencies defines the interface for standings reads.
type StandingsDependencies interface {
	Standings(ctx context.Context) []standings.Row
	WeeklyRanks(ctx context.Context) ([]standings.RankSnapshot, error)
	WeekLabels() []string
}

// StandingsHandler handles season standings and weekly trajectory
// requests.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// HandleGetStandings handles GET /standings requests.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Standings(r.Context()))
}

// weeklyResponse carries the trajectory rows plus the week order the
// consumer needs to sort a line series.
type weeklyResponse struct {
	Weeks      []string                 `json:"weeks"`
	Trajectory []standings.RankSnapshot `json:"trajectory"`
}

// HandleGetWeekly handles GET /standings/weekly requests.
func (h *StandingsHandler) HandleGetWeekly(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_weekly_standings"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	snaps, err := h.deps.WeeklyRanks(r.Context())
	if err != nil {
		// The store only holds validated picks, so this indicates a
		// domain/configuration mismatch, not bad request data.
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, weeklyResponse{
		Weeks:      h.deps.WeekLabels(),
		Trajectory: snaps,
	})
}
