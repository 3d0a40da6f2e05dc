package application

import (
	"context"
	"sync"

	"recruitbot/internal/domain/entities"
)

type fakeSchedule struct {
	result entities.ScheduleResult
	calls  int
}

func (f *fakeSchedule) FetchCurrentDay(context.Context) entities.ScheduleResult {
	f.calls++
	return f.result
}

type memLedger struct {
	ids     map[string]bool
	hasErr  error
	markErr error
}

func newMemLedger() *memLedger { return &memLedger{ids: map[string]bool{}} }

func (l *memLedger) HasNotified(_ context.Context, id string) (bool, error) {
	if l.hasErr != nil {
		return false, l.hasErr
	}
	return l.ids[id], nil
}

func (l *memLedger) MarkNotified(_ context.Context, id string) error {
	if l.markErr != nil {
		return l.markErr
	}
	l.ids[id] = true
	return nil
}

type sentMessage struct {
	channelID string
	content   string
}

type fakeMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (m *fakeMessenger) SendChannelMessage(_ context.Context, channelID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{channelID: channelID, content: content})
	return nil
}
