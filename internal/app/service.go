// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/gridrank/gridrank/internal/adapters/ingest"
	"github.com/gridrank/gridrank/internal/adapters/mq/queue"
	"github.com/gridrank/gridrank/internal/adapters/mq/worker"
	"github.com/gridrank/gridrank/internal/adapters/repository"
	"github.com/gridrank/gridrank/internal/domain/breakdown"
	"github.com/gridrank/gridrank/internal/domain/dedupe"
	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/internal/domain/standings"
	"github.com/gridrank/gridrank/pkg/logger"
	"github.com/gridrank/gridrank/pkg/metrics"
)

// Service wires the season store, the submission pipeline and the
// ranking engine. Rankings are recomputed from a store snapshot on
// every read; nothing is cached between calls.
type Service struct {
	mu sync.RWMutex

	store      repository.Store
	deduper    dedupe.Deduper
	subQueue   queue.Queue
	workerPool *worker.Pool
	weeks      season.Weeks

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	picksFile   string
	logosFile   string
	winnersFile string

	started bool

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		weeks:       season.Default(),
		workerCount: 0, // pool chooses a CPU-based default
		queueSize:   10_000,
		dedupeSize:  50_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components, including the
// startup season sheet load.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting standings service...")

	s.store = repository.NewMemStore()
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.subQueue = queue.NewInMemoryQueue(
		queue.WithCapacity(s.queueSize),
	)
	s.workerPool = worker.NewPool(s.workerCount, s.subQueue, s.store, s.deduper, s.weeks)
	s.workerPool.Start(ctx)

	if s.picksFile != "" || s.logosFile != "" || s.winnersFile != "" {
		loader := ingest.NewLoader(s.weeks)
		if err := loader.LoadSeason(ctx, s.store, s.picksFile, s.logosFile, s.winnersFile); err != nil {
			return err
		}
	}

	picks, players := s.store.Counts(ctx)
	s.started = true
	s.logger.Info(ctx, "standings service started",
		logger.Int("weeks", s.weeks.Len()),
		logger.Int("picks", picks),
		logger.Int("players", players),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping standings service...")

	if s.subQueue != nil {
		_ = s.subQueue.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(ctx, "standings service stopped")
}

// SeenAndRecord atomically checks whether a submission ID was seen and
// records it if not.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordPickDuplicate()
	}
	return seen
}

// Unrecord releases a submission ID so it can be retried.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Enqueue submits a pick for asynchronous validation and ingestion.
// Returns false on backpressure.
func (s *Service) Enqueue(ctx context.Context, sub queue.Submission) bool {
	return s.subQueue.Enqueue(ctx, sub)
}

// Standings returns the season table, recomputed from the current
// season snapshot.
func (s *Service) Standings(ctx context.Context) []standings.Row {
	start := time.Now()
	rows := standings.ComputeStandings(s.store.Events(ctx))
	metrics.ObserveStandingsCompute(float64(time.Since(start).Microseconds()) / 1000)
	return rows
}

// WeeklyRanks returns the per-week rank trajectory for the whole
// season.
func (s *Service) WeeklyRanks(ctx context.Context) ([]standings.RankSnapshot, error) {
	start := time.Now()
	snaps, err := standings.ComputeTrajectory(s.store.Events(ctx), s.weeks)
	metrics.ObserveTrajectoryCompute(float64(time.Since(start).Microseconds()) / 1000)
	return snaps, err
}

// RoleBreakdown returns per-week score totals by role.
func (s *Service) RoleBreakdown(ctx context.Context) ([]breakdown.RoleRow, error) {
	return breakdown.WeeklyRoleTotals(s.store.Picks(ctx), s.weeks)
}

// PlayerWeekPicks returns one player's picks in one week.
func (s *Service) PlayerWeekPicks(ctx context.Context, player, week string) []model.Pick {
	return breakdown.PlayerWeekPicks(s.store.Picks(ctx), player, week)
}

// Picks returns all picks in the season.
func (s *Service) Picks(ctx context.Context) []model.Pick {
	return s.store.Picks(ctx)
}

// Logos returns the team logo map.
func (s *Service) Logos(ctx context.Context) map[string]string {
	return s.store.Logos(ctx)
}

// PastWinners returns the historical results.
func (s *Service) PastWinners(ctx context.Context) []model.PastWinner {
	return s.store.PastWinners(ctx)
}

// WeekLabels returns the season's week labels in domain order, for
// consumers that sort by week.
func (s *Service) WeekLabels() []string {
	return s.weeks.Labels()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
		"weeks":       s.weeks.Len(),
	}
	if s.started {
		picks, players := s.store.Counts(ctx)
		stats["queueLength"] = s.subQueue.Len(ctx)
		stats["picks"] = picks
		stats["players"] = players
		metrics.UpdatePickCount(picks)
		metrics.UpdatePlayerCount(players)
	}
	return stats
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
