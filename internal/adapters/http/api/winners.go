// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"sort"

	"github.com/gridrank/gridrank/internal/domain/model"
)

// WinnersDependencies defines the interface for past-results reads.
type WinnersDependencies interface {
	PastWinners(ctx context.Context) []model.PastWinner
}

// WinnersHandler handles past-results requests.
type WinnersHandler struct {
	deps WinnersDependencies
}

// NewWinnersHandler creates a new past-winners handler.
func NewWinnersHandler(deps WinnersDependencies) *WinnersHandler {
	return &WinnersHandler{deps: deps}
}

// yearBlock groups one season's final table.
type yearBlock struct {
	Year    int                `json:"year"`
	Results []model.PastWinner `json:"results"`
}

// HandleGetPastWinners handles GET /past-winners requests: historical
// results grouped by year, most recent first, rank order within each
// year.
func (h *WinnersHandler) HandleGetPastWinners(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	byYear := make(map[int][]model.PastWinner)
	for _, pw := range h.deps.PastWinners(r.Context()) {
		byYear[pw.Year] = append(byYear[pw.Year], pw)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	blocks := make([]yearBlock, 0, len(years))
	for _, y := range years {
		results := byYear[y]
		sort.Slice(results, func(i, j int) bool { return results[i].Rank < results[j].Rank })
		blocks = append(blocks, yearBlock{Year: y, Results: results})
	}
	writeJSON(w, http.StatusOK, blocks)
}
