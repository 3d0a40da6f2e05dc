package application

import (
	"context"
	"time"

	"recruitbot/internal/domain"
	"recruitbot/internal/domain/entities"
	"recruitbot/internal/ports/input"
	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

var _ input.RecruitingUseCase = (*RecruitingService)(nil)

// RecruitingService runs one poll of the schedule and announces a running
// recruiting session at most once.
type RecruitingService struct {
	schedule  output.ScheduleSource
	ledger    output.Ledger
	announcer input.AnnouncementUseCase
	window    domain.ActiveWindow
	log       logx.Logger
}

func NewRecruitingService(
	schedule output.ScheduleSource,
	ledger output.Ledger,
	announcer input.AnnouncementUseCase,
	window domain.ActiveWindow,
	log logx.Logger,
) *RecruitingService {
	return &RecruitingService{
		schedule:  schedule,
		ledger:    ledger,
		announcer: announcer,
		window:    window,
		log:       log,
	}
}

// Tick never returns an error: every failure ends the tick and the next one
// starts from scratch. A ledger failure skips the announcement rather than
// risk a duplicate.
func (s *RecruitingService) Tick(ctx context.Context, now time.Time) input.TickOutcome {
	if !s.window.Contains(now) {
		s.log.Debug("Conference not running, nothing to do", logx.Time("now", now))
		return input.OutcomeOutsideWindow
	}

	res := s.schedule.FetchCurrentDay(ctx)
	switch res.Kind {
	case entities.ScheduleFailed:
		s.log.Warn("⚠️ Schedule fetch failed", logx.Err(res.Err))
		return input.OutcomeFetchFailed
	case entities.ScheduleEmpty:
		s.log.Debug("No current day in schedule")
		return input.OutcomeNoSchedule
	}
	if res.Day == nil {
		return input.OutcomeNoSchedule
	}

	event, ok := domain.FindRecruitingEvent(res.Day.RunningEvents)
	if !ok {
		return input.OutcomeNoRecruitingEvent
	}
	log := s.log.With(logx.String("event_id", event.ID), logx.String("title", event.Title))

	notified, err := s.ledger.HasNotified(ctx, event.ID)
	if err != nil {
		log.Error("❌ Ledger lookup failed", logx.Err(err))
		return input.OutcomeLedgerFailed
	}
	if notified {
		return input.OutcomeAlreadyNotified
	}
	if err := s.ledger.MarkNotified(ctx, event.ID); err != nil {
		log.Error("❌ Ledger write failed", logx.Err(err))
		return input.OutcomeLedgerFailed
	}

	if err := s.announcer.AnnounceRecruiting(ctx, event); err != nil {
		log.Error("❌ Recruiting announcement failed", logx.Err(err))
		return input.OutcomeSendFailed
	}
	log.Info("📣 Recruiting session announced")
	return input.OutcomeAnnounced
}
