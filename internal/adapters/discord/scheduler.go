package discord

import (
	"context"
	"time"

	"recruitbot/internal/ports/input"
	"recruitbot/pkg/logx"
)

// Scheduler drives the recruiting poll: one tick right away, then one tick
// per interval, measured from the end of the previous tick.
type Scheduler struct {
	useCase  input.RecruitingUseCase
	interval time.Duration
	now      func() time.Time
	log      logx.Logger
}

func NewScheduler(useCase input.RecruitingUseCase, interval time.Duration, log logx.Logger) *Scheduler {
	return &Scheduler{
		useCase:  useCase,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("⏱️ Scheduler démarré", logx.Duration("interval", s.interval))
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler arrêté")
			return
		case <-timer.C:
		}

		started := s.now()
		outcome := s.useCase.Tick(ctx, started)
		s.log.Debug("tick", logx.String("outcome", outcome.String()), logx.Duration("took", s.now().Sub(started)))

		if ctx.Err() != nil {
			s.log.Info("Scheduler arrêté")
			return
		}
		timer.Reset(s.interval)
	}
}
