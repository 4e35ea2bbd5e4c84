package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gridrank/gridrank/internal/seasonsim"
	"github.com/gridrank/gridrank/pkg/logger"
)

const defaultRunTimeout = 10 * time.Minute

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		players      = flag.Int("players", seasonsim.DefaultPlayers, "Number of simulated players")
		picksPerWeek = flag.Int("picks-per-week", seasonsim.DefaultPicksPerWeek, "Picks submitted per player per week")
		seed         = flag.Int64("seed", 1, "Random seed for the generated season")
		timeout      = flag.Duration("timeout", seasonsim.DefaultTimeout, "HTTP request timeout")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := seasonsim.NewConfig()
	cfg.BaseURL = *baseURL
	cfg.Players = *players
	cfg.PicksPerWeek = *picksPerWeek
	cfg.Seed = *seed
	cfg.Timeout = *timeout
	cfg.Verbose = *verbose

	if err := seasonsim.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
