package app

import (
	"github.com/gridrank/gridrank/internal/domain/season"
	"github.com/gridrank/gridrank/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWeeks sets the season's week domain.
func WithWeeks(weeks season.Weeks) Option {
	return func(s *Service) {
		if weeks.Len() > 0 {
			s.weeks = weeks
		}
	}
}

// WithWorkerCount sets the number of ingestion workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the idempotency cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithSeedFiles sets the season sheet exports loaded at startup.
// Empty paths are skipped.
func WithSeedFiles(picks, logos, winners string) Option {
	return func(s *Service) {
		s.picksFile = picks
		s.logosFile = logos
		s.winnersFile = winners
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
