// Package ingest loads the season sheet exports (CSV) into the season
// store at startup.
//
// The files mirror the workbook the league actually maintains: a picks
// sheet, a team logo sheet and a past-winners sheet. Week labels are
// validated against the configured week domain here, at the boundary;
// a bad label fails the load with the offending row number rather than
// being dropped or mis-sorted.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/internal/domain/standings"
)

// Sink is the subset of the season store ingestion writes to.
type Sink interface {
	Append(ctx context.Context, picks ...model.Pick) error
	SetLogos(ctx context.Context, logos map[string]string)
	SetPastWinners(ctx context.Context, winners []model.PastWinner)
}

// Loader reads the season sheet exports.
type Loader struct {
	weeks season.Weeks
}

// NewLoader creates a loader validating against weeks.
func NewLoader(weeks season.Weeks) *Loader {
	return &Loader{weeks: weeks}
}

// LoadSeason reads the configured files into sink. Empty paths are
// skipped; a missing or malformed file fails the load.
func (l *Loader) LoadSeason(ctx context.Context, sink Sink, picksPath, logosPath, winnersPath string) error {
	if picksPath != "" {
		picks, err := l.loadPicks(picksPath)
		if err != nil {
			return fmt.Errorf("picks file %s: %w", picksPath, err)
		}
		if err := sink.Append(ctx, picks...); err != nil {
			return fmt.Errorf("picks file %s: %w", picksPath, err)
		}
	}
	if logosPath != "" {
		logos, err := loadLogos(logosPath)
		if err != nil {
			return fmt.Errorf("logos file %s: %w", logosPath, err)
		}
		sink.SetLogos(ctx, logos)
	}
	if winnersPath != "" {
		winners, err := loadWinners(winnersPath)
		if err != nil {
			return fmt.Errorf("winners file %s: %w", winnersPath, err)
		}
		sink.SetPastWinners(ctx, winners)
	}
	return nil
}

// loadPicks parses Player,Week,Role,Pick,Team,Opponent,Score rows.
func (l *Loader) loadPicks(path string) ([]model.Pick, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	cols, err := headerIndex(rows, "Player", "Week", "Role", "Pick", "Team", "Opponent", "Score")
	if err != nil {
		return nil, err
	}

	picks := make([]model.Pick, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after header
		score, err := strconv.ParseFloat(strings.TrimSpace(row[cols["Score"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad score %q: %w", line, row[cols["Score"]], ErrBadRow)
		}
		p := model.Pick{
			Player:    strings.TrimSpace(row[cols["Player"]]),
			Week:      strings.TrimSpace(row[cols["Week"]]),
			Role:      strings.TrimSpace(row[cols["Role"]]),
			Selection: strings.TrimSpace(row[cols["Pick"]]),
			Team:      strings.TrimSpace(row[cols["Team"]]),
			Opponent:  strings.TrimSpace(row[cols["Opponent"]]),
			Score:     score,
		}
		if p.Player == "" {
			return nil, fmt.Errorf("row %d: missing player: %w", line, ErrBadRow)
		}
		if !l.weeks.Contains(p.Week) {
			return nil, fmt.Errorf("row %d: %w", line, &standings.InvalidWeekError{Week: p.Week, Player: p.Player})
		}
		picks = append(picks, p)
	}
	return picks, nil
}

// loadLogos parses Team,Logo rows.
func loadLogos(path string) (map[string]string, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	cols, err := headerIndex(rows, "Team", "Logo")
	if err != nil {
		return nil, err
	}

	logos := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] {
		team := strings.TrimSpace(row[cols["Team"]])
		if team == "" {
			continue
		}
		logos[team] = strings.TrimSpace(row[cols["Logo"]])
	}
	return logos, nil
}

// loadWinners parses Year,Rank,Player,Score rows.
func loadWinners(path string) ([]model.PastWinner, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	cols, err := headerIndex(rows, "Year", "Rank", "Player", "Score")
	if err != nil {
		return nil, err
	}

	winners := make([]model.PastWinner, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		year, err := strconv.Atoi(strings.TrimSpace(row[cols["Year"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q: %w", line, row[cols["Year"]], ErrBadRow)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(row[cols["Rank"]]))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad rank %q: %w", line, row[cols["Rank"]], ErrBadRow)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(row[cols["Score"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad score %q: %w", line, row[cols["Score"]], ErrBadRow)
		}
		winners = append(winners, model.PastWinner{
			Year:   year,
			Rank:   rank,
			Player: strings.TrimSpace(row[cols["Player"]]),
			Score:  score,
		})
	}
	return winners, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrMissingHeader
	}
	return rows, nil
}

// headerIndex maps required column names to their positions in the
// header row.
func headerIndex(rows [][]string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingHeader)
		}
	}
	return cols, nil
}
