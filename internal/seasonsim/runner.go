package seasonsim

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/pkg/logger"
)

// settleDelay gives the worker pool time to drain the queue between
// submission and retrieval.
const settleDelay = 2 * time.Second

// Run executes a complete simulated season against a running service.
func Run(ctx context.Context, cfg *Config) error {
	start := time.Now()

	logger.Get().Info(ctx, "starting season simulation",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("players", cfg.Players),
		logger.Int("picksPerWeek", cfg.PicksPerWeek),
		logger.Any("seed", cfg.Seed))

	client := newHTTPClient(cfg.Timeout)

	// Step 1: Check service health
	if err := checkHealth(ctx, client, cfg.BaseURL); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate the season
	weeks := season.Default()
	picks := Generate(cfg, weeks)
	logger.Get().Info(ctx, "generated season", logger.Int("picks", len(picks)))

	// Step 3: Submit every pick
	accepted, err := submitPicks(ctx, client, cfg.BaseURL, picks)
	if err != nil {
		return fmt.Errorf("pick submission failed: %w", err)
	}
	logger.Get().Info(ctx, "submitted picks",
		logger.Int("accepted", accepted),
		logger.Int("total", len(picks)))
	if accepted != len(picks) {
		return fmt.Errorf("service accepted %d of %d picks: %w", accepted, len(picks), ErrVerification)
	}

	// Step 4: Wait for the queue to drain
	logger.Get().Info(ctx, "waiting for picks to be processed")
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(settleDelay):
	}

	// Step 5: Retrieve and verify the season table
	rows, err := fetchStandings(ctx, client, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("standings retrieval failed: %w", err)
	}
	if err := verifyStandings(rows); err != nil {
		return err
	}
	if err := verifyTotals(rows, picks); err != nil {
		return err
	}
	logger.Get().Info(ctx, "season table verified", logger.Int("players", len(rows)))

	// Step 6: Retrieve and verify the weekly trajectory
	weekly, err := fetchWeekly(ctx, client, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("weekly standings retrieval failed: %w", err)
	}
	if err := verifyWeekly(weekly); err != nil {
		return err
	}
	logger.Get().Info(ctx, "weekly trajectory verified",
		logger.Int("snapshots", len(weekly.Trajectory)))

	logger.Get().Info(ctx, "season simulation passed",
		logger.String("duration", time.Since(start).String()))
	return nil
}

func checkHealth(ctx context.Context, client *http.Client, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	return nil
}

// verifyTotals compares the served season totals against the sums the
// simulator can compute from the picks it generated.
func verifyTotals(rows []standingsRow, picks []Pick) error {
	want := make(map[string]float64, len(picks))
	for _, p := range picks {
		want[p.Player] += p.Score
	}
	if len(rows) != len(want) {
		return fmt.Errorf("served %d players, submitted %d: %w", len(rows), len(want), ErrVerification)
	}
	for _, row := range rows {
		total, ok := want[row.Player]
		if !ok {
			return fmt.Errorf("served unknown player %q: %w", row.Player, ErrVerification)
		}
		if math.Abs(row.TotalScore-total) > 1e-9 {
			return fmt.Errorf("player %q total %v, want %v: %w", row.Player, row.TotalScore, total, ErrVerification)
		}
	}
	return nil
}
