package discord

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"recruitbot/internal/ports/input"
	"recruitbot/pkg/logx"
)

type countingTicker struct {
	mu       sync.Mutex
	calls    int
	inFlight int
	overlap  bool
	stopAt   int
	cancel   context.CancelFunc
}

func (c *countingTicker) Tick(ctx context.Context, now time.Time) input.TickOutcome {
	c.mu.Lock()
	c.inFlight++
	if c.inFlight > 1 {
		c.overlap = true
	}
	c.calls++
	if c.calls == c.stopAt {
		c.cancel()
	}
	c.mu.Unlock()

	time.Sleep(2 * time.Millisecond)

	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
	return input.OutcomeNoSchedule
}

func TestScheduler_RunsSequentiallyUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := &countingTicker{stopAt: 3, cancel: cancel}
	s := NewScheduler(ticker, time.Millisecond, logx.Nop())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	assert.Equal(t, 3, ticker.calls)
	assert.False(t, ticker.overlap)
}

func TestScheduler_FirstTickIsImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := &countingTicker{stopAt: 1, cancel: cancel}
	s := NewScheduler(ticker, time.Hour, logx.Nop())

	start := time.Now()
	s.Run(ctx)

	assert.Equal(t, 1, ticker.calls)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestScheduler_StopsWhileSleeping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := &countingTicker{cancel: func() {}}
	s := NewScheduler(ticker, time.Hour, logx.Nop())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	assert.Equal(t, 1, ticker.calls)
}
