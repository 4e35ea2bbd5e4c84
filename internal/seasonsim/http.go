package seasonsim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// standingsRow mirrors the /standings response shape.
type standingsRow struct {
	Rank            int     `json:"rank"`
	Player          string  `json:"player"`
	TotalScore      float64 `json:"total_score"`
	PointsFromFirst float64 `json:"points_from_first"`
}

// rankSnapshot mirrors one trajectory row of the /standings/weekly
// response.
type rankSnapshot struct {
	Week   string `json:"week"`
	Player string `json:"player"`
	Rank   int    `json:"rank"`
}

// weeklyResponse mirrors the /standings/weekly response shape.
type weeklyResponse struct {
	Weeks      []string       `json:"weeks"`
	Trajectory []rankSnapshot `json:"trajectory"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// submitPicks posts every pick to the service, returning the number
// accepted.
func submitPicks(ctx context.Context, client *http.Client, baseURL string, picks []Pick) (int, error) {
	accepted := 0
	for _, p := range picks {
		body, err := json.Marshal(p)
		if err != nil {
			return accepted, fmt.Errorf("marshal pick: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/picks", bytes.NewReader(body))
		if err != nil {
			return accepted, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return accepted, fmt.Errorf("submit pick: %w", err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusAccepted || resp.StatusCode == http.StatusOK {
			accepted++
		}
	}
	return accepted, nil
}

func fetchStandings(ctx context.Context, client *http.Client, baseURL string) ([]standingsRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/standings", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch standings: status %d", resp.StatusCode)
	}
	var rows []standingsRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode standings: %w", err)
	}
	return rows, nil
}

func fetchWeekly(ctx context.Context, client *http.Client, baseURL string) (*weeklyResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/standings/weekly", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weekly standings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch weekly standings: status %d", resp.StatusCode)
	}
	var out weeklyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode weekly standings: %w", err)
	}
	return &out, nil
}
