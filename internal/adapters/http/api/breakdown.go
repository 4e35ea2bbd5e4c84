// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gridrank/gridrank/internal/domain/breakdown"
	"github.com/gridrank/gridrank/internal/domain/model"
)

// BreakdownDependencies defines the interface for breakdown reads.
type BreakdownDependencies interface {
	RoleBreakdown(ctx context.Context) ([]breakdown.RoleRow, error)
	PlayerWeekPicks(ctx context.Context, player, week string) []model.Pick
}

// BreakdownHandler handles performance breakdown requests.
type BreakdownHandler struct {
	deps BreakdownDependencies
}

// NewBreakdownHandler creates a new breakdown handler.
func NewBreakdownHandler(deps BreakdownDependencies) *BreakdownHandler {
	return &BreakdownHandler{deps: deps}
}

// breakdownResponse carries the season role pivot and, when a player
// and week are selected, that player's picks for the week.
type breakdownResponse struct {
	Roles []breakdown.RoleRow `json:"roles"`
	Picks []model.Pick        `json:"picks,omitempty"`
}

// HandleGetBreakdown handles GET /breakdown?player=&week= requests.
// The player and week filters are optional but must be given together.
func (h *BreakdownHandler) HandleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_breakdown"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	player := strings.TrimSpace(r.URL.Query().Get("player"))
	week := strings.TrimSpace(r.URL.Query().Get("week"))
	if (player == "") != (week == "") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	roles, err := h.deps.RoleBreakdown(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	resp := breakdownResponse{Roles: roles}
	if player != "" {
		resp.Picks = h.deps.PlayerWeekPicks(r.Context(), player, week)
	}
	writeJSON(w, http.StatusOK, resp)
}
