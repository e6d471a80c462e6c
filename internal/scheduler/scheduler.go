package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionSweeper interface {
	PurgeExpired() int
}

// Scheduler periodically drops bot sessions whose flow has been idle past the
// store's TTL.
type Scheduler struct {
	sessions sessionSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	if purged := s.sessions.PurgeExpired(); purged > 0 {
		s.logger.Info("idle sessions purged",
			logger.Int("count", purged),
		)
	}
}
