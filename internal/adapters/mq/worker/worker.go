// Package worker consumes pick submissions, validates them against the
// season's week domain and appends them to the season store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gridrank/gridrank/internal/adapters/mq/queue"
	"github.com/gridrank/gridrank/internal/domain/model"
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/internal/domain/standings"
	"github.com/gridrank/gridrank/pkg/logger"
	"github.com/gridrank/gridrank/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
)

// Appender receives validated picks.
type Appender interface {
	Append(ctx context.Context, picks ...model.Pick) error
}

// Dequeuer defines how workers receive submissions.
type Dequeuer interface {
	Dequeue(ctx context.Context) <-chan queue.Submission
}

// Rejecter is notified when a submission fails validation, so the
// idempotency record can be released for a corrected resubmission.
type Rejecter interface {
	Unrecord(ctx context.Context, id string)
}

// Worker processes submissions until its context is canceled.
type Worker struct {
	queue    Dequeuer
	store    Appender
	rejecter Rejecter
	weeks    season.Weeks
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a worker with configuration options.
func New(q Dequeuer, store Appender, weeks season.Weeks, opts ...Option) *Worker {
	w := &Worker{
		queue:    q,
		store:    store,
		weeks:    weeks,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run starts the worker loop.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	subs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case s, ok := <-subs:
			if !ok {
				return
			}
			if err := w.process(ctx, s); err != nil {
				w.logger.Warn(ctx, "submission rejected",
					logger.String("submissionID", s.ID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the worker, waiting for in-flight work.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker shutdown timed out: %w", ctx.Err())
	}
}

// process validates one submission and appends it to the season.
// Validation failures never reach the store; the submission ID is
// unrecorded so a corrected payload can reuse it.
func (w *Worker) process(ctx context.Context, s queue.Submission) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	pick, err := w.validate(s)
	if err != nil {
		metrics.RecordWorkerError()
		if w.rejecter != nil {
			w.rejecter.Unrecord(ctx, s.ID)
		}
		return err
	}

	if err := w.store.Append(ctx, pick); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordPickRejected("store")
		if w.rejecter != nil {
			w.rejecter.Unrecord(ctx, s.ID)
		}
		return fmt.Errorf("append pick for %q: %w", pick.Player, err)
	}

	metrics.RecordPickIngested()
	return nil
}

// validate normalizes the submission and checks it against the week
// domain and the role list.
func (w *Worker) validate(s queue.Submission) (model.Pick, error) {
	pick := model.Pick{
		Player:    strings.TrimSpace(s.Player),
		Week:      strings.TrimSpace(s.Week),
		Role:      strings.TrimSpace(s.Role),
		Selection: strings.TrimSpace(s.Selection),
		Team:      strings.TrimSpace(s.Team),
		Opponent:  strings.TrimSpace(s.Opponent),
		Score:     s.Score,
	}

	if pick.Player == "" {
		metrics.RecordPickRejected("missing_player")
		return model.Pick{}, ErrMissingPlayer
	}
	if !w.weeks.Contains(pick.Week) {
		metrics.RecordPickRejected("invalid_week")
		return model.Pick{}, &standings.InvalidWeekError{Week: pick.Week, Player: pick.Player}
	}
	if !validRole(pick.Role) {
		metrics.RecordPickRejected("invalid_role")
		return model.Pick{}, fmt.Errorf("role %q: %w", pick.Role, ErrInvalidRole)
	}
	return pick, nil
}

func validRole(role string) bool {
	switch role {
	case "Passing", "Rushing", "Receiving", "Defensive":
		return true
	}
	return false
}

// Pool manages multiple workers over one queue.
type Pool struct {
	workers []*Worker
	logger  logger.Logger
}

// NewPool creates workerCount workers; non-positive counts fall back
// to a CPU-based default.
func NewPool(workerCount int, q Dequeuer, store Appender, rejecter Rejecter, weeks season.Weeks) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		p.workers[i] = New(q, store, weeks,
			WithName("worker-"+strconv.Itoa(i)),
			WithRejecter(rejecter),
		)
	}
	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop stops all workers, bounding the wait per worker.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		close(w.shutdown)
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}
