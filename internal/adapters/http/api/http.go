// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gridrank/gridrank/internal/adapters/mq/queue"
	"github.com/gridrank/gridrank/internal/domain/breakdown"
	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/standings"
)

// Dependencies required by HTTP handlers. An interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	// Submission path.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, sub queue.Submission) bool

	// Read operations over the season.
	Standings(ctx context.Context) []standings.Row
	WeeklyRanks(ctx context.Context) ([]standings.RankSnapshot, error)
	RoleBreakdown(ctx context.Context) ([]breakdown.RoleRow, error)
	PlayerWeekPicks(ctx context.Context, player, week string) []model.Pick
	Picks(ctx context.Context) []model.Pick
	Logos(ctx context.Context) map[string]string
	PastWinners(ctx context.Context) []model.PastWinner
	WeekLabels() []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	standingsHandler *StandingsHandler
	breakdownHandler *BreakdownHandler
	picksHandler     *PicksHandler
	winnersHandler   *WinnersHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		standingsHandler: NewStandingsHandler(deps),
		breakdownHandler: NewBreakdownHandler(deps),
		picksHandler:     NewPicksHandler(deps),
		winnersHandler:   NewWinnersHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/standings/weekly", MetricsMiddleware(s.standingsHandler.HandleGetWeekly, "standings_weekly"))
	mux.HandleFunc("/breakdown", MetricsMiddleware(s.breakdownHandler.HandleGetBreakdown, "breakdown"))
	mux.HandleFunc("/picks", MetricsMiddleware(s.picksHandler.Handle, "picks"))
	mux.HandleFunc("/past-winners", MetricsMiddleware(s.winnersHandler.HandleGetPastWinners, "past_winners"))
}

// pickRequest mirrors the submission schema for POST /picks.
type pickRequest struct {
	SubmissionID string  `json:"submission_id"`
	Player       string  `json:"player"`
	Week         string  `json:"week"`
	Role         string  `json:"role"`
	Pick         string  `json:"pick"`
	Team         string  `json:"team"`
	Opponent     string  `json:"opponent"`
	Score        float64 `json:"score"`
}

func (p pickRequest) validate() error {
	switch {
	case strings.TrimSpace(p.SubmissionID) == "":
		return errors.New("missing submission_id")
	case strings.TrimSpace(p.Player) == "":
		return errors.New("missing player")
	case strings.TrimSpace(p.Week) == "":
		return errors.New("missing week")
	case strings.TrimSpace(p.Role) == "":
		return errors.New("missing role")
	}
	return nil
}

func (p pickRequest) submission() queue.Submission {
	return queue.Submission{
		ID:        p.SubmissionID,
		Player:    p.Player,
		Week:      p.Week,
		Role:      p.Role,
		Selection: p.Pick,
		Team:      p.Team,
		Opponent:  p.Opponent,
		Score:     p.Score,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
