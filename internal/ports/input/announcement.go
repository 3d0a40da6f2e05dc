package input

import (
	"context"
	"time"

	"recruitbot/internal/domain/entities"
)

type AnnouncementUseCase interface {
	AnnounceLunch(ctx context.Context, caller entities.Caller) error
	AnnounceRecruiting(ctx context.Context, event entities.RunningEvent) error
}

type RecruitingUseCase interface {
	Tick(ctx context.Context, now time.Time) TickOutcome
}

// TickOutcome says how far one scheduler tick went.
type TickOutcome int

const (
	OutcomeOutsideWindow TickOutcome = iota
	OutcomeFetchFailed
	OutcomeNoSchedule
	OutcomeNoRecruitingEvent
	OutcomeAlreadyNotified
	OutcomeLedgerFailed
	OutcomeSendFailed
	OutcomeAnnounced
)

func (o TickOutcome) String() string {
	switch o {
	case OutcomeOutsideWindow:
		return "outside_window"
	case OutcomeFetchFailed:
		return "fetch_failed"
	case OutcomeNoSchedule:
		return "no_schedule"
	case OutcomeNoRecruitingEvent:
		return "no_recruiting_event"
	case OutcomeAlreadyNotified:
		return "already_notified"
	case OutcomeLedgerFailed:
		return "ledger_failed"
	case OutcomeSendFailed:
		return "send_failed"
	case OutcomeAnnounced:
		return "announced"
	default:
		return "unknown"
	}
}
