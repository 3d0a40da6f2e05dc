package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"recruitbot/internal/domain"
	"recruitbot/internal/domain/entities"
	"recruitbot/internal/infrastructure/i18n"
	"recruitbot/internal/ports/input"
	"recruitbot/pkg/logx"
	"recruitbot/pkg/tz"
)

var conferenceDay = time.Date(2023, time.May, 26, 14, 45, 0, 0, tz.Rome)

func recruitingDay() *entities.CurrentDay {
	return &entities.CurrentDay{
		Day: "2023-05-26",
		RunningEvents: []entities.RunningEvent{
			{ID: "101", Title: "Keynote", Rooms: []entities.Room{{ID: "1", Name: "Sala Lasagna"}}},
			{
				ID:    "202",
				Title: "Recruiting - Acme Corp",
				End:   time.Date(2023, time.May, 26, 15, 30, 0, 0, tz.Rome),
				Rooms: []entities.Room{{ID: "9", Name: "Recruiting"}},
			},
		},
	}
}

type tickFixture struct {
	schedule  *fakeSchedule
	ledger    *memLedger
	messenger *fakeMessenger
	svc       *RecruitingService
}

func newTickFixture(result entities.ScheduleResult) *tickFixture {
	f := &tickFixture{
		schedule:  &fakeSchedule{result: result},
		ledger:    newMemLedger(),
		messenger: &fakeMessenger{},
	}
	announcer := NewAnnouncementService(f.messenger, i18n.NewTranslator("en", logx.Nop()), testAudience())
	window := domain.ActiveWindow{Days: []int{25, 26, 27, 28}, Location: tz.Rome}
	f.svc = NewRecruitingService(f.schedule, f.ledger, announcer, window, logx.Nop())
	return f
}

func TestTick_AnnouncesOnce(t *testing.T) {
	f := newTickFixture(entities.Found(recruitingDay()))
	ctx := context.Background()

	assert.Equal(t, input.OutcomeAnnounced, f.svc.Tick(ctx, conferenceDay))
	assert.Equal(t, input.OutcomeAlreadyNotified, f.svc.Tick(ctx, conferenceDay.Add(5*time.Minute)))

	assert.Len(t, f.messenger.sent, 1)
	assert.True(t, f.ledger.ids["202"])
	assert.Equal(t, 2, f.schedule.calls)
}

func TestTick_OutsideWindow(t *testing.T) {
	f := newTickFixture(entities.Found(recruitingDay()))

	for day := 1; day <= 31; day++ {
		if day >= 25 && day <= 28 {
			continue
		}
		now := time.Date(2023, time.May, day, 14, 45, 0, 0, tz.Rome)
		assert.Equal(t, input.OutcomeOutsideWindow, f.svc.Tick(context.Background(), now), "day %d", day)
	}
	assert.Zero(t, f.schedule.calls)
	assert.Empty(t, f.messenger.sent)
}

func TestTick_WindowUsesConferenceZone(t *testing.T) {
	f := newTickFixture(entities.Empty())

	// 23:30 UTC on the 24th is 01:30 on the 25th in Rome.
	out := f.svc.Tick(context.Background(), time.Date(2023, time.May, 24, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, input.OutcomeNoSchedule, out)
	assert.Equal(t, 1, f.schedule.calls)
}

func TestTick_NothingToDo(t *testing.T) {
	day := recruitingDay()
	day.RunningEvents = day.RunningEvents[:1]

	tests := []struct {
		name   string
		result entities.ScheduleResult
		want   input.TickOutcome
	}{
		{"fetch failed", entities.Failed(domain.ErrScheduleUnavailable), input.OutcomeFetchFailed},
		{"no current day", entities.Empty(), input.OutcomeNoSchedule},
		{"no recruiting event", entities.Found(day), input.OutcomeNoRecruitingEvent},
		{"empty day", entities.Found(&entities.CurrentDay{}), input.OutcomeNoRecruitingEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTickFixture(tt.result)
			assert.Equal(t, tt.want, f.svc.Tick(context.Background(), conferenceDay))
			assert.Empty(t, f.messenger.sent)
			assert.Empty(t, f.ledger.ids)
		})
	}
}

func TestTick_LedgerFailuresSkipSend(t *testing.T) {
	f := newTickFixture(entities.Found(recruitingDay()))
	f.ledger.hasErr = errors.New("connection refused")
	assert.Equal(t, input.OutcomeLedgerFailed, f.svc.Tick(context.Background(), conferenceDay))

	f.ledger.hasErr = nil
	f.ledger.markErr = errors.New("read-only replica")
	assert.Equal(t, input.OutcomeLedgerFailed, f.svc.Tick(context.Background(), conferenceDay))
	assert.Empty(t, f.messenger.sent)

	// recovers on the next tick
	f.ledger.markErr = nil
	assert.Equal(t, input.OutcomeAnnounced, f.svc.Tick(context.Background(), conferenceDay))
	assert.Len(t, f.messenger.sent, 1)
}

func TestTick_SendFailureKeepsEventMarked(t *testing.T) {
	f := newTickFixture(entities.Found(recruitingDay()))
	f.messenger.err = errors.New("missing access")

	assert.Equal(t, input.OutcomeSendFailed, f.svc.Tick(context.Background(), conferenceDay))
	assert.True(t, f.ledger.ids["202"])

	f.messenger.err = nil
	assert.Equal(t, input.OutcomeAlreadyNotified, f.svc.Tick(context.Background(), conferenceDay))
	assert.Empty(t, f.messenger.sent)
}

func TestTick_OnlyFirstRecruitingEvent(t *testing.T) {
	day := recruitingDay()
	day.RunningEvents = append(day.RunningEvents, entities.RunningEvent{
		ID:    "303",
		Title: "Recruiting - Other Corp",
		Rooms: []entities.Room{{ID: "9", Name: "RECRUITING"}},
	})
	f := newTickFixture(entities.Found(day))

	assert.Equal(t, input.OutcomeAnnounced, f.svc.Tick(context.Background(), conferenceDay))
	assert.Equal(t, input.OutcomeAlreadyNotified, f.svc.Tick(context.Background(), conferenceDay))
	assert.Len(t, f.messenger.sent, 1)
	assert.Contains(t, f.messenger.sent[0].content, "Acme Corp")
	assert.False(t, f.ledger.ids["303"])
}

func TestTickOutcomeString(t *testing.T) {
	assert.Equal(t, "announced", input.OutcomeAnnounced.String())
	assert.Equal(t, "outside_window", input.OutcomeOutsideWindow.String())
	assert.Equal(t, "unknown", input.TickOutcome(99).String())
}
