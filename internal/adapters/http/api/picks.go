// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gridrank/gridrank/internal/domain/model"
)

// PicksDependencies defines the interface for pick listing and
// submission.
type PicksDependencies interface {
	Picks(ctx context.Context) []model.Pick
	Logos(ctx context.Context) map[string]string
}

// PicksHandler serves the all-picks listing and dispatches pick
// submissions to the SubmitHandler.
type PicksHandler struct {
	deps   PicksDependencies
	submit *SubmitHandler
}

// NewPicksHandler creates a new picks handler.
func NewPicksHandler(deps Dependencies) *PicksHandler {
	return &PicksHandler{
		deps:   deps,
		submit: NewSubmitHandler(deps),
	}
}

// pickRow is one line of the all-picks listing, with the team's logo
// URL resolved for the consumer.
type pickRow struct {
	Player   string  `json:"player"`
	Week     string  `json:"week"`
	Pick     string  `json:"pick"`
	Team     string  `json:"team"`
	Logo     string  `json:"logo,omitempty"`
	Opponent string  `json:"opponent"`
	Score    float64 `json:"score"`
}

// Handle routes GET (listing) and POST (submission) on /picks.
func (h *PicksHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.submit.HandlePostPick(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleList handles GET /picks: every pick of the season, best score
// first.
func (h *PicksHandler) handleList(w http.ResponseWriter, r *http.Request) {
	picks := h.deps.Picks(r.Context())
	logos := h.deps.Logos(r.Context())

	rows := make([]pickRow, len(picks))
	for i, p := range picks {
		rows[i] = pickRow{
			Player:   p.Player,
			Week:     p.Week,
			Pick:     p.Selection,
			Team:     p.Team,
			Logo:     logos[p.Team],
			Opponent: p.Opponent,
			Score:    p.Score,
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score < rows[j].Score
	})
	writeJSON(w, http.StatusOK, rows)
}

// SubmitHandler handles pick submissions.
type SubmitHandler struct {
	deps Dependencies
}

// NewSubmitHandler creates a new submission handler.
func NewSubmitHandler(deps Dependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// HandlePostPick handles POST /picks requests. Accepted submissions
// are validated and ingested asynchronously; the response only
// acknowledges receipt.
func (h *SubmitHandler) HandlePostPick(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_pick"

	var req pickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first.
	if h.deps.SeenAndRecord(r.Context(), req.SubmissionID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.submission()); !ok {
		// Roll back the "seen" status since enqueue failed.
		h.deps.Unrecord(r.Context(), req.SubmissionID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
